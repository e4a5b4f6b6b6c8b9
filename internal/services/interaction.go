package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/pawradius/backend/internal/models"
	"github.com/pawradius/backend/internal/repositories"
	"gorm.io/gorm"
)

// ReportThreshold is the report count an alert must exceed before it is
// auto-hidden. Hard cutoff, applied in the same request as the tipping report.
const ReportThreshold = 10

// SupportResult is returned when a user toggles support on an alert
type SupportResult struct {
	SupportCount int  `json:"support_count"`
	Liked        bool `json:"liked"`
}

// ReportResult is returned when a user reports an alert
type ReportResult struct {
	ReportCount int  `json:"report_count"`
	AutoHidden  bool `json:"auto_hidden"`
}

// InteractionService records support/report interactions and applies the
// moderation auto-hide
type InteractionService struct {
	interactionRepository repositories.InteractionRepository
	alertRepository       repositories.AlertRepository
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(interactionRepo repositories.InteractionRepository, alertRepo repositories.AlertRepository) *InteractionService {
	return &InteractionService{
		interactionRepository: interactionRepo,
		alertRepository:       alertRepo,
	}
}

// Support toggles the user's support on an alert: first call records it,
// second call withdraws it and returns the counter to its prior value.
func (s *InteractionService) Support(alertID, userID uint) (*SupportResult, error) {
	if _, err := s.getAlert(alertID); err != nil {
		return nil, err
	}

	liked, count, err := s.interactionRepository.ToggleSupport(alertID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle support: %w", err)
	}
	return &SupportResult{SupportCount: count, Liked: liked}, nil
}

// Report records an abuse report. Add-only: a second report from the same
// user fails with ErrAlreadyReported rather than double-counting. When the
// read-back count exceeds the threshold the alert is deactivated before
// returning, so the tipping reporter observes the hide.
func (s *InteractionService) Report(alertID, userID uint) (*ReportResult, error) {
	alert, err := s.getAlert(alertID)
	if err != nil {
		return nil, err
	}

	count, err := s.interactionRepository.CreateReport(alertID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateInteraction) {
			return nil, ErrAlreadyReported
		}
		return nil, fmt.Errorf("failed to record report: %w", err)
	}

	result := &ReportResult{ReportCount: count}
	if count > ReportThreshold && alert.IsActive {
		if err := s.alertRepository.Deactivate(alertID); err != nil {
			// The report itself stands; the next report re-triggers the hide.
			log.Printf("Auto-hide failed for alert %d at %d reports: %v", alertID, count, err)
		} else {
			log.Printf("Alert %d auto-hidden at %d reports", alertID, count)
			result.AutoHidden = true
		}
	}
	return result, nil
}

func (s *InteractionService) getAlert(alertID uint) (*models.BroadcastAlert, error) {
	alert, err := s.alertRepository.GetAlertByID(alertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}
	return alert, nil
}

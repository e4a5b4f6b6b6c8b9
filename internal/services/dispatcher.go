package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pawradius/backend/internal/models"
	"github.com/pawradius/backend/internal/repositories"
	"gorm.io/gorm"
)

// PushPayload is the notification content sent with every batch
type PushPayload struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchOutcome aggregates the per-token verdicts of one successful batch call
type BatchOutcome struct {
	SuccessCount int
	FailureCount int
}

// PushSender sends one bounded batch of tokens. A returned error means the
// batch call itself failed and every token in it counts as a failure; a nil
// error carries per-token verdicts aggregated into the outcome.
type PushSender interface {
	SendBatch(ctx context.Context, tokens []string, payload PushPayload) (*BatchOutcome, error)
}

// DispatcherConfig is injected at construction. Enabled=false turns every
// dispatch into a recorded no-op rather than a silent skip.
type DispatcherConfig struct {
	Enabled       bool
	BatchSize     int           // FCM multicast ceiling, 500
	BatchPause    time.Duration // pacing between sequential batches
	MinVouchScore int           // trust floor for recipients
}

// DispatchResult summarizes one fan-out attempt
type DispatchResult struct {
	Notified      int    `json:"notified"`
	Failed        int    `json:"failed"`
	RadiusMeters  int    `json:"radius_meters"`
	EligibleCount int    `json:"eligible_count"`
	Batches       int    `json:"batches"`
	Status        string `json:"status"`
}

// DispatchService fans an alert out to every eligible nearby user as push
// notifications, in paced sequential batches, and audits every attempt
type DispatchService struct {
	alertRepository  repositories.AlertRepository
	userRepository   repositories.UserRepository
	recordRepository repositories.DispatchRecordRepository
	entitlements     *EntitlementService
	sender           PushSender
	config           DispatcherConfig
}

// NewDispatchService creates a new DispatchService. A nil sender means the
// push provider is unconfigured; dispatches still run and audit.
func NewDispatchService(
	alertRepo repositories.AlertRepository,
	userRepo repositories.UserRepository,
	recordRepo repositories.DispatchRecordRepository,
	entitlements *EntitlementService,
	sender PushSender,
	config DispatcherConfig,
) *DispatchService {
	if config.BatchSize <= 0 {
		config.BatchSize = 500
	}
	return &DispatchService{
		alertRepository:  alertRepo,
		userRepository:   userRepo,
		recordRepository: recordRepo,
		entitlements:     entitlements,
		sender:           sender,
		config:           config,
	}
}

// Dispatch notifies everyone eligible around an alert. The audience radius
// comes from the creator's tier at dispatch time, not from the alert's stored
// range; the two are independently derived quantities. A proximity failure is
// fatal; a batch failure is attributed to that batch's tokens and the rest of
// the batches still go out; an audit write failure is logged and swallowed.
func (s *DispatchService) Dispatch(ctx context.Context, alertID uint) (*DispatchResult, error) {
	alert, err := s.alertRepository.GetAlertByID(alertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to load alert: %w", err)
	}

	if !alert.IsActive || alert.Expired(time.Now()) {
		result := &DispatchResult{Status: models.DispatchStatusAlertInactive}
		s.writeRecord(alertID, result)
		return result, nil
	}

	caps, _, err := s.entitlements.ResolveCaps(alert.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve creator entitlement: %w", err)
	}
	radiusMeters := int(math.Round(caps.MaxRangeKm * 1000))

	recipients, err := s.userRepository.FindNearbyEligible(
		ctx, alert.Latitude, alert.Longitude, radiusMeters, s.config.MinVouchScore, alert.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("proximity query failed: %w", err)
	}

	tokens := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if r.PushToken != nil && *r.PushToken != "" {
			tokens = append(tokens, *r.PushToken)
		}
	}

	result := &DispatchResult{
		RadiusMeters:  radiusMeters,
		EligibleCount: len(recipients),
	}

	switch {
	case len(tokens) == 0:
		result.Status = models.DispatchStatusNoRecipients
	case !s.config.Enabled:
		result.Status = models.DispatchStatusPushDisabled
	case s.sender == nil:
		result.Status = models.DispatchStatusUnconfigured
	default:
		s.sendBatches(ctx, alert, tokens, result)
	}

	s.writeRecord(alertID, result)
	return result, nil
}

// sendBatches partitions tokens into fixed-size batches and sends them
// sequentially with the configured pause between calls
func (s *DispatchService) sendBatches(ctx context.Context, alert *models.BroadcastAlert, tokens []string, result *DispatchResult) {
	payload := PushPayload{
		Title: notificationTitle(alert.AlertType),
		Body:  alert.Title,
		Data: map[string]string{
			"alert_id":   fmt.Sprintf("%d", alert.ID),
			"alert_type": alert.AlertType,
		},
	}

	for start := 0; start < len(tokens); start += s.config.BatchSize {
		if start > 0 && s.config.BatchPause > 0 {
			time.Sleep(s.config.BatchPause)
		}

		end := start + s.config.BatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]
		result.Batches++

		outcome, err := s.sender.SendBatch(ctx, batch, payload)
		if err != nil {
			// Fail-closed per batch: the whole batch counts as failed.
			log.Printf("Batch %d send failed for alert %d (%d tokens): %v",
				result.Batches, alert.ID, len(batch), err)
			result.Failed += len(batch)
			continue
		}
		result.Notified += outcome.SuccessCount
		result.Failed += outcome.FailureCount
	}

	switch {
	case result.Notified == 0 && result.Failed > 0:
		result.Status = models.DispatchStatusFailed
	case result.Failed > 0:
		result.Status = models.DispatchStatusPartial
	default:
		result.Status = models.DispatchStatusSent
	}

	log.Printf("Dispatched alert %d: %d notified, %d failed across %d batches",
		alert.ID, result.Notified, result.Failed, result.Batches)
}

// writeRecord persists the audit record for a dispatch. Never fails the
// dispatch: a logging problem must not change the user-visible outcome.
func (s *DispatchService) writeRecord(alertID uint, result *DispatchResult) {
	record := &models.NotificationDispatchRecord{
		ID:             uuid.NewString(),
		AlertID:        alertID,
		RecipientCount: result.EligibleCount,
		SuccessCount:   result.Notified,
		FailureCount:   result.Failed,
		BatchCount:     result.Batches,
		RadiusMeters:   result.RadiusMeters,
		Status:         result.Status,
	}
	if err := s.recordRepository.CreateRecord(record); err != nil {
		log.Printf("Failed to write dispatch record for alert %d: %v", alertID, err)
	}
}

func notificationTitle(alertType string) string {
	switch alertType {
	case models.AlertTypeStray:
		return "Stray pet reported near you"
	case models.AlertTypeLost:
		return "Lost pet reported near you"
	default:
		return "Pet alert near you"
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/pawradius/backend/internal/models"
	"github.com/pawradius/backend/internal/repositories"
	"gorm.io/gorm"
)

// CreateBroadcastResult carries the created alert plus the cross-post
// outcome. A failed cross-post is a status here, never an error: the alert
// stays live when the secondary system falls over.
type CreateBroadcastResult struct {
	Alert        *models.BroadcastAlert `json:"alert"`
	SocialStatus string                 `json:"social_status"`
}

// BroadcastService owns the broadcast alert lifecycle and the best-effort
// social cross-post
type BroadcastService struct {
	alertRepository repositories.AlertRepository
	postRepository  repositories.CommunityPostRepository
	entitlements    *EntitlementService
}

// NewBroadcastService creates a new BroadcastService
func NewBroadcastService(alertRepo repositories.AlertRepository, postRepo repositories.CommunityPostRepository, entitlements *EntitlementService) *BroadcastService {
	return &BroadcastService{
		alertRepository: alertRepo,
		postRepository:  postRepo,
		entitlements:    entitlements,
	}
}

// Create validates the request against the creator's effective caps, inserts
// the alert, and optionally cross-posts it. Cap violations reject the create
// outright; nothing is clamped and no row is written.
func (s *BroadcastService) Create(ctx context.Context, creatorID uint, req *models.CreateBroadcastRequest) (*CreateBroadcastResult, error) {
	caps, tier, err := s.entitlements.ResolveCaps(creatorID)
	if err != nil {
		return nil, err
	}
	if capErr := ValidateRequest(req.RangeKm, req.DurationHours, caps, tier); capErr != nil {
		return nil, capErr
	}

	now := time.Now()
	alert := &models.BroadcastAlert{
		CreatorID:     creatorID,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		AlertType:     req.AlertType,
		Title:         req.Title,
		Description:   req.Description,
		PhotoURL:      req.PhotoURL,
		RangeKm:       req.RangeKm,
		DurationHours: req.DurationHours,
		RangeMeters:   int(math.Round(req.RangeKm * 1000)),
		ExpiresAt:     now.Add(time.Duration(req.DurationHours) * time.Hour),
		IsActive:      true,
		SocialStatus:  models.SocialStatusNone,
	}
	if err := s.alertRepository.CreateAlert(alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	result := &CreateBroadcastResult{Alert: alert, SocialStatus: models.SocialStatusNone}
	if req.CrossPost && crossPostable(req.AlertType) {
		result.SocialStatus = s.crossPost(ctx, alert)
	}
	return result, nil
}

// crossPostable alert types get a companion discussion post when opted in
func crossPostable(alertType string) bool {
	return alertType == models.AlertTypeStray || alertType == models.AlertTypeLost
}

// crossPost creates the companion community post and links it back. Failure
// marks the alert social_status=failed and is surfaced as a status, never
// rolled back into the create.
func (s *BroadcastService) crossPost(ctx context.Context, alert *models.BroadcastAlert) string {
	post := &models.CommunityPost{
		AlertID:   alert.ID,
		AuthorID:  alert.CreatorID,
		AlertType: alert.AlertType,
		Body:      crossPostBody(alert),
		PhotoURL:  alert.PhotoURL,
	}
	if err := s.postRepository.CreatePost(ctx, post); err != nil {
		log.Printf("Cross-post failed for alert %d: %v", alert.ID, err)
		if setErr := s.alertRepository.SetSocialResult(alert.ID, "", models.SocialStatusFailed); setErr != nil {
			log.Printf("Failed to record cross-post failure on alert %d: %v", alert.ID, setErr)
		}
		alert.SocialStatus = models.SocialStatusFailed
		return models.SocialStatusFailed
	}

	postID := post.ID.Hex()
	if err := s.alertRepository.SetSocialResult(alert.ID, postID, models.SocialStatusPosted); err != nil {
		log.Printf("Failed to link community post %s to alert %d: %v", postID, alert.ID, err)
	}
	alert.SocialPostID = postID
	alert.SocialStatus = models.SocialStatusPosted
	return models.SocialStatusPosted
}

// crossPostBody builds the canonical companion-post text
func crossPostBody(alert *models.BroadcastAlert) string {
	label := map[string]string{
		models.AlertTypeStray: "Stray pet spotted",
		models.AlertTypeLost:  "Lost pet",
	}[alert.AlertType]
	body := fmt.Sprintf("%s: %s", label, alert.Title)
	if alert.Description != "" {
		body += "\n\n" + alert.Description
	}
	body += fmt.Sprintf("\n\nNear %.4f, %.4f", alert.Latitude, alert.Longitude)
	return body
}

// Update edits the alert's title/description. Owner-only, and only while the
// alert is still active.
func (s *BroadcastService) Update(alertID, editorID uint, req *models.UpdateBroadcastRequest) (*models.BroadcastAlert, error) {
	alert, err := s.getAlert(alertID)
	if err != nil {
		return nil, err
	}
	if alert.CreatorID != editorID {
		return nil, ErrNotOwner
	}
	if !alert.IsActive || alert.Expired(time.Now()) {
		return nil, ErrAlertInactive
	}

	title := alert.Title
	description := alert.Description
	if req.Title != "" {
		title = req.Title
	}
	if req.Description != "" {
		description = req.Description
	}
	if err := s.alertRepository.UpdateContent(alertID, title, description); err != nil {
		return nil, fmt.Errorf("failed to update alert: %w", err)
	}
	alert.Title = title
	alert.Description = description
	return alert, nil
}

// Remove deactivates an alert on the owner's request. Idempotent: removing an
// already-inactive alert succeeds without touching anything.
func (s *BroadcastService) Remove(alertID, actorID uint) error {
	alert, err := s.getAlert(alertID)
	if err != nil {
		return err
	}
	if alert.CreatorID != actorID {
		return ErrNotOwner
	}
	if !alert.IsActive {
		return nil
	}
	return s.alertRepository.Deactivate(alertID)
}

// GetByID retrieves a single alert
func (s *BroadcastService) GetByID(alertID uint) (*models.BroadcastAlert, error) {
	return s.getAlert(alertID)
}

// ListActive returns currently visible alerts (active and unexpired)
func (s *BroadcastService) ListActive(limit int) ([]models.BroadcastAlert, error) {
	return s.alertRepository.ListActive(time.Now(), limit)
}

// ListMine returns all alerts the user created, including inactive ones
func (s *BroadcastService) ListMine(creatorID uint) ([]models.BroadcastAlert, error) {
	return s.alertRepository.GetAlertsByCreatorID(creatorID)
}

func (s *BroadcastService) getAlert(alertID uint) (*models.BroadcastAlert, error) {
	alert, err := s.alertRepository.GetAlertByID(alertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}
	return alert, nil
}

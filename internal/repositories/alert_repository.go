package repositories

import (
	"time"

	"github.com/pawradius/backend/internal/models"
	"gorm.io/gorm"
)

// AlertRepository defines the interface for broadcast alert operations
type AlertRepository interface {
	CreateAlert(alert *models.BroadcastAlert) error
	GetAlertByID(id uint) (*models.BroadcastAlert, error)
	GetAlertsByCreatorID(creatorID uint) ([]models.BroadcastAlert, error)
	ListActive(now time.Time, limit int) ([]models.BroadcastAlert, error)
	UpdateContent(id uint, title, description string) error
	Deactivate(id uint) error
	SetSocialResult(id uint, postID, status string) error
}

// PostgresAlertRepository implements AlertRepository for PostgreSQL
type PostgresAlertRepository struct {
	db *gorm.DB
}

// NewPostgresAlertRepository creates a new PostgresAlertRepository
func NewPostgresAlertRepository(db *gorm.DB) *PostgresAlertRepository {
	return &PostgresAlertRepository{db: db}
}

// CreateAlert inserts a new broadcast alert
func (r *PostgresAlertRepository) CreateAlert(alert *models.BroadcastAlert) error {
	return r.db.Create(alert).Error
}

// GetAlertByID retrieves an alert by ID
func (r *PostgresAlertRepository) GetAlertByID(id uint) (*models.BroadcastAlert, error) {
	var alert models.BroadcastAlert
	if err := r.db.First(&alert, id).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

// GetAlertsByCreatorID retrieves all alerts created by a user, newest first
func (r *PostgresAlertRepository) GetAlertsByCreatorID(creatorID uint) ([]models.BroadcastAlert, error) {
	var alerts []models.BroadcastAlert
	err := r.db.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

// ListActive retrieves active, unexpired alerts, newest first. Expired rows
// are filtered here rather than swept.
func (r *PostgresAlertRepository) ListActive(now time.Time, limit int) ([]models.BroadcastAlert, error) {
	var alerts []models.BroadcastAlert
	err := r.db.Where("is_active = ? AND expires_at > ?", true, now).
		Order("created_at DESC").Limit(limit).Find(&alerts).Error
	return alerts, err
}

// UpdateContent updates an alert's editable fields (title/description)
func (r *PostgresAlertRepository) UpdateContent(id uint, title, description string) error {
	return r.db.Model(&models.BroadcastAlert{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "description": description}).Error
}

// Deactivate marks an alert inactive. Safe to call on an already-inactive
// alert; both the owner-remove and auto-hide paths converge here.
func (r *PostgresAlertRepository) Deactivate(id uint) error {
	return r.db.Model(&models.BroadcastAlert{}).Where("id = ?", id).Update("is_active", false).Error
}

// SetSocialResult records the cross-post outcome on the alert row
func (r *PostgresAlertRepository) SetSocialResult(id uint, postID, status string) error {
	return r.db.Model(&models.BroadcastAlert{}).Where("id = ?", id).
		Updates(map[string]interface{}{"social_post_id": postID, "social_status": status}).Error
}

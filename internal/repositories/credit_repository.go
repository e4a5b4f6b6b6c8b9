package repositories

import (
	"time"

	"github.com/pawradius/backend/internal/models"
	"gorm.io/gorm"
)

// CreditRepository defines the interface for broadcast add-on credit lookups
type CreditRepository interface {
	HasActiveCredit(userID uint, now time.Time) (bool, error)
	GrantCredit(userID uint, expiresAt time.Time) error
}

// PostgresCreditRepository implements CreditRepository for PostgreSQL
type PostgresCreditRepository struct {
	db *gorm.DB
}

// NewPostgresCreditRepository creates a new PostgresCreditRepository
func NewPostgresCreditRepository(db *gorm.DB) *PostgresCreditRepository {
	return &PostgresCreditRepository{db: db}
}

// HasActiveCredit reports whether the user holds an unexpired broadcast credit
func (r *PostgresCreditRepository) HasActiveCredit(userID uint, now time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.BroadcastCredit{}).
		Where("user_id = ? AND expires_at > ?", userID, now).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GrantCredit records a new time-boxed credit for the user. Purchases come in
// through the billing webhook, which is outside this service.
func (r *PostgresCreditRepository) GrantCredit(userID uint, expiresAt time.Time) error {
	return r.db.Create(&models.BroadcastCredit{UserID: userID, ExpiresAt: expiresAt}).Error
}

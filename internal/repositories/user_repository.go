package repositories

import (
	"context"

	"github.com/pawradius/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations, including
// the geospatial proximity query the notification fan-out depends on
type UserRepository interface {
	GetUserByID(id uint) (*models.User, error)
	UpdatePushToken(id uint, token string) error
	UpdateLocation(id uint, lat, lng float64) error
	FindNearbyEligible(ctx context.Context, lat, lng float64, radiusMeters int, minVouchScore int, excludeUserID uint) ([]models.NearbyRecipient, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePushToken stores the user's current device push token
func (r *PostgresUserRepository) UpdatePushToken(id uint, token string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("push_token", token).Error
}

// UpdateLocation stores the user's last known coordinates
func (r *PostgresUserRepository) UpdateLocation(id uint, lat, lng float64) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"latitude": lat, "longitude": lng}).Error
}

// Haversine distance in meters against each user's last known coordinates.
// Strictly-within-radius, vouch floor, and creator exclusion all happen in SQL.
const nearbyEligibleQuery = `
SELECT id AS user_id, push_token
FROM users
WHERE id <> ?
  AND deleted_at IS NULL
  AND vouch_score >= ?
  AND latitude IS NOT NULL
  AND longitude IS NOT NULL
  AND 2 * 6371000 * asin(sqrt(
        power(sin(radians(latitude - ?) / 2), 2) +
        cos(radians(?)) * cos(radians(latitude)) *
        power(sin(radians(longitude - ?) / 2), 2)
      )) < ?`

// FindNearbyEligible returns users strictly within radiusMeters of (lat, lng)
// whose vouch score meets the floor, excluding the alert creator. Recipients
// without a push token are included; the dispatcher filters them out.
func (r *PostgresUserRepository) FindNearbyEligible(ctx context.Context, lat, lng float64, radiusMeters int, minVouchScore int, excludeUserID uint) ([]models.NearbyRecipient, error) {
	var recipients []models.NearbyRecipient
	err := r.db.WithContext(ctx).
		Raw(nearbyEligibleQuery, excludeUserID, minVouchScore, lat, lat, lng, radiusMeters).
		Scan(&recipients).Error
	if err != nil {
		return nil, err
	}
	return recipients, nil
}

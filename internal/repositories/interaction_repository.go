package repositories

import (
	"errors"

	"github.com/pawradius/backend/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateInteraction is returned when the ledger's uniqueness constraint
// rejects a second interaction of the same type from the same user.
var ErrDuplicateInteraction = errors.New("interaction already recorded")

// InteractionRepository defines the interface for the support/report ledger.
// Counter updates ride in the same transaction as the ledger write so the
// denormalized counts never drift from the rows.
type InteractionRepository interface {
	ToggleSupport(alertID, userID uint) (liked bool, supportCount int, err error)
	CreateReport(alertID, userID uint) (reportCount int, err error)
}

// PostgresInteractionRepository implements InteractionRepository for PostgreSQL
type PostgresInteractionRepository struct {
	db *gorm.DB
}

// NewPostgresInteractionRepository creates a new PostgresInteractionRepository
func NewPostgresInteractionRepository(db *gorm.DB) *PostgresInteractionRepository {
	return &PostgresInteractionRepository{db: db}
}

// ToggleSupport inserts a support row and increments the counter, or removes
// an existing row and decrements (floored at 0). The interaction row is the
// source of truth; the counter is its cache.
func (r *PostgresInteractionRepository) ToggleSupport(alertID, userID uint) (bool, int, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Interaction
		findErr := tx.Where("alert_id = ? AND user_id = ? AND type = ?",
			alertID, userID, models.InteractionSupport).First(&existing).Error

		switch {
		case findErr == nil:
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&models.BroadcastAlert{}).Where("id = ?", alertID).
				Update("support_count", gorm.Expr("GREATEST(support_count - 1, 0)")).Error
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			interaction := &models.Interaction{
				AlertID: alertID,
				UserID:  userID,
				Type:    models.InteractionSupport,
			}
			if err := tx.Create(interaction).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrDuplicateInteraction
				}
				return err
			}
			liked = true
			return tx.Model(&models.BroadcastAlert{}).Where("id = ?", alertID).
				Update("support_count", gorm.Expr("support_count + 1")).Error
		default:
			return findErr
		}
	})
	if err != nil {
		return false, 0, err
	}

	count, err := r.readCount(alertID, "support_count")
	return liked, count, err
}

// CreateReport inserts a report row (add-only, no un-report) and increments
// the counter. The read-back count lets the caller apply the auto-hide
// threshold in the same request.
func (r *PostgresInteractionRepository) CreateReport(alertID, userID uint) (int, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		interaction := &models.Interaction{
			AlertID: alertID,
			UserID:  userID,
			Type:    models.InteractionReport,
		}
		if err := tx.Create(interaction).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateInteraction
			}
			return err
		}
		return tx.Model(&models.BroadcastAlert{}).Where("id = ?", alertID).
			Update("report_count", gorm.Expr("report_count + 1")).Error
	})
	if err != nil {
		return 0, err
	}

	return r.readCount(alertID, "report_count")
}

func (r *PostgresInteractionRepository) readCount(alertID uint, column string) (int, error) {
	var count int
	err := r.db.Model(&models.BroadcastAlert{}).Where("id = ?", alertID).
		Select(column).Scan(&count).Error
	return count, err
}

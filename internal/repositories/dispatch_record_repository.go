package repositories

import (
	"github.com/pawradius/backend/internal/models"
	"gorm.io/gorm"
)

// DispatchRecordRepository defines the interface for notification audit records
type DispatchRecordRepository interface {
	CreateRecord(record *models.NotificationDispatchRecord) error
	GetByAlertID(alertID uint) ([]models.NotificationDispatchRecord, error)
}

// PostgresDispatchRecordRepository implements DispatchRecordRepository for PostgreSQL
type PostgresDispatchRecordRepository struct {
	db *gorm.DB
}

// NewPostgresDispatchRecordRepository creates a new PostgresDispatchRecordRepository
func NewPostgresDispatchRecordRepository(db *gorm.DB) *PostgresDispatchRecordRepository {
	return &PostgresDispatchRecordRepository{db: db}
}

// CreateRecord inserts a dispatch audit record
func (r *PostgresDispatchRecordRepository) CreateRecord(record *models.NotificationDispatchRecord) error {
	return r.db.Create(record).Error
}

// GetByAlertID retrieves all dispatch records for an alert, newest first
func (r *PostgresDispatchRecordRepository) GetByAlertID(alertID uint) ([]models.NotificationDispatchRecord, error) {
	var records []models.NotificationDispatchRecord
	err := r.db.Where("alert_id = ?", alertID).Order("created_at DESC").Find(&records).Error
	return records, err
}

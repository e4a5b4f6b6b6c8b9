package models

import "time"

// Dispatch status tags. Every dispatch attempt persists exactly one record,
// including deliberate no-ops, so each alert has a traceable outcome.
const (
	DispatchStatusSent          = "sent"
	DispatchStatusPartial       = "partial"
	DispatchStatusFailed        = "failed"
	DispatchStatusNoRecipients  = "no_recipients"
	DispatchStatusPushDisabled  = "push_disabled"
	DispatchStatusUnconfigured  = "push_unconfigured"
	DispatchStatusAlertInactive = "alert_inactive"
)

// NotificationDispatchRecord is the audit trail of one fan-out attempt (PostgreSQL)
type NotificationDispatchRecord struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	AlertID        uint      `json:"alert_id" gorm:"index;not null"`
	RecipientCount int       `json:"recipient_count"`
	SuccessCount   int       `json:"success_count"`
	FailureCount   int       `json:"failure_count"`
	BatchCount     int       `json:"batch_count"`
	RadiusMeters   int       `json:"radius_meters"`
	Status         string    `json:"status" gorm:"size:20;index"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

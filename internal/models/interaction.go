package models

import "gorm.io/gorm"

// Interaction types
const (
	InteractionSupport = "support"
	InteractionReport  = "report"
)

// Interaction is one user's support or report on an alert. The composite
// unique index is the concurrency guard against double-support/double-report
// from retried requests; the alert's counters are caches of these rows.
type Interaction struct {
	gorm.Model
	AlertID uint   `json:"alert_id" gorm:"uniqueIndex:idx_alert_user_type,priority:1;not null"`
	UserID  uint   `json:"user_id" gorm:"uniqueIndex:idx_alert_user_type,priority:2;not null"`
	Type    string `json:"type" gorm:"size:10;uniqueIndex:idx_alert_user_type,priority:3;not null"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Credit ceiling applied while a broadcast credit is active, regardless of
// the holder's base tier.
const (
	CreditRangeKm       = 150.0
	CreditDurationHours = 72
)

// BroadcastCredit is a paid, time-boxed add-on that raises the holder's
// range/duration caps to the credit ceiling while unexpired.
type BroadcastCredit struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
}

// Active reports whether the credit still applies at the given time.
func (c *BroadcastCredit) Active(now time.Time) bool {
	return c.ExpiresAt.After(now)
}

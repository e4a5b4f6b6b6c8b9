package models

import "time"

// Alert types. Stray and lost alerts may be cross-posted to the community feed.
const (
	AlertTypeStray  = "stray"
	AlertTypeLost   = "lost"
	AlertTypeOthers = "others"
)

// Social cross-post outcomes for a broadcast alert
const (
	SocialStatusNone   = "none"
	SocialStatusPosted = "posted"
	SocialStatusFailed = "failed"
)

// BroadcastAlert is a time-boxed, geolocated alert (PostgreSQL).
// RangeMeters and ExpiresAt are derived once at creation; the caps that
// validated RangeKm/DurationHours are never re-applied afterwards.
type BroadcastAlert struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CreatorID     uint      `json:"creator_id" gorm:"index;not null"`
	Latitude      float64   `json:"latitude" gorm:"not null"`
	Longitude     float64   `json:"longitude" gorm:"not null"`
	AlertType     string    `json:"alert_type" gorm:"size:10;not null;index"`
	Title         string    `json:"title" gorm:"size:100;not null"`
	Description   string    `json:"description" gorm:"size:500"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	RangeKm       float64   `json:"range_km" gorm:"not null"`
	DurationHours int       `json:"duration_hours" gorm:"not null"`
	RangeMeters   int       `json:"range_meters" gorm:"not null"`
	ExpiresAt     time.Time `json:"expires_at" gorm:"index;not null"`
	IsActive      bool      `json:"is_active" gorm:"default:true;index"`

	// Server-authoritative counters, caches of the interaction ledger.
	SupportCount int `json:"support_count" gorm:"default:0"`
	ReportCount  int `json:"report_count" gorm:"default:0"`

	SocialPostID string `json:"social_post_id,omitempty" gorm:"size:24"`
	SocialStatus string `json:"social_status" gorm:"size:10;default:'none'"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the alert's lifetime has elapsed. Expiry is
// declarative: nothing sweeps expired rows, consumers filter on it.
func (a *BroadcastAlert) Expired(now time.Time) bool {
	return !a.ExpiresAt.After(now)
}

// CreateBroadcastRequest defines the request body for publishing an alert
type CreateBroadcastRequest struct {
	Latitude      float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude     float64 `json:"longitude" validate:"min=-180,max=180"`
	AlertType     string  `json:"alert_type" validate:"required,oneof=stray lost others"`
	Title         string  `json:"title" validate:"required,min=1,max=100"`
	Description   string  `json:"description" validate:"max=500"`
	PhotoURL      string  `json:"photo_url,omitempty" validate:"omitempty,url"`
	RangeKm       float64 `json:"range_km" validate:"required,gt=0"`
	DurationHours int     `json:"duration_hours" validate:"required,gt=0"`
	CrossPost     bool    `json:"cross_post"`
}

// UpdateBroadcastRequest defines the owner-only patch body (title/description)
type UpdateBroadcastRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

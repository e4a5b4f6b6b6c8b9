package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// Subscription tiers. Caps for each tier live in the services policy table.
const (
	TierFree    = "free"
	TierPremium = "premium"
	TierGold    = "gold"
)

type User struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Tier       string `json:"tier" gorm:"size:10;default:'free';index"`

	// FamilyInviterID is set once the user accepts a family-plan invite.
	// The invitee inherits the inviter's tier (one hop only, never chained).
	FamilyInviterID *uint `json:"family_inviter_id,omitempty" gorm:"index"`

	VouchScore int      `json:"vouch_score" gorm:"default:0"`
	PushToken  *string  `json:"-" gorm:"size:255"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// UpdatePushTokenRequest registers or replaces the caller's device push token
type UpdatePushTokenRequest struct {
	PushToken string `json:"push_token" validate:"required,max=255"`
}

// UpdateLocationRequest records the caller's last known coordinates
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// NearbyRecipient is a projection returned by the proximity query:
// a user eligible to be notified about a broadcast, plus their token.
type NearbyRecipient struct {
	UserID    uint    `json:"user_id"`
	PushToken *string `json:"-"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

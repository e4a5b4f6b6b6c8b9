package services

import (
	"errors"
	"fmt"
)

// Hard-invariant violations returned to the caller as typed values. Secondary
// effects (cross-post, push, audit log) never surface here; they degrade to a
// recorded status instead.
var (
	ErrNotOwner        = errors.New("only the alert creator may do this")
	ErrAlreadyReported = errors.New("alert already reported by this user")
	ErrAlertNotFound   = errors.New("alert not found")
	ErrAlertInactive   = errors.New("alert is no longer active")
	ErrUserNotFound    = errors.New("user not found")
)

// CapExceededError reports a requested range/duration above the caller's
// resolved tier ceiling. Carries the actual limit so the client can show it
// alongside an upgrade prompt.
type CapExceededError struct {
	Field      string  `json:"field"` // "range_km" or "duration_hours"
	Requested  float64 `json:"requested"`
	AllowedMax float64 `json:"allowed_max"`
	Tier       string  `json:"tier"`
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("%s %.1f exceeds the %s tier limit of %.1f", e.Field, e.Requested, e.Tier, e.AllowedMax)
}

package services

import "github.com/pawradius/backend/internal/models"

// BroadcastCaps are the effective range/duration ceilings for one request
type BroadcastCaps struct {
	MaxRangeKm       float64 `json:"max_range_km"`
	MaxDurationHours int     `json:"max_duration_hours"`
}

// Static tier policy. Both axes are strictly increasing free < premium < gold.
var tierPolicy = map[string]BroadcastCaps{
	models.TierFree:    {MaxRangeKm: 10, MaxDurationHours: 12},
	models.TierPremium: {MaxRangeKm: 25, MaxDurationHours: 24},
	models.TierGold:    {MaxRangeKm: 50, MaxDurationHours: 48},
}

// creditCaps is the fixed ceiling an active add-on credit grants, regardless
// of base tier.
var creditCaps = BroadcastCaps{
	MaxRangeKm:       models.CreditRangeKm,
	MaxDurationHours: models.CreditDurationHours,
}

// ResolveCaps maps an effective tier (plus any active add-on override) to its
// broadcast ceilings. Unknown tiers fall back to free.
func ResolveCaps(effectiveTier string, overrideActive bool) BroadcastCaps {
	if overrideActive {
		return creditCaps
	}
	caps, ok := tierPolicy[effectiveTier]
	if !ok {
		return tierPolicy[models.TierFree]
	}
	return caps
}

// ValidateRequest checks a requested range/duration against the resolved
// caps. Returns nil if within limits. Range is checked before duration; the
// first violation wins. The server never clamps silently: a request over the
// cap is rejected so billing limits stay visible.
func ValidateRequest(rangeKm float64, durationHours int, caps BroadcastCaps, tier string) *CapExceededError {
	if rangeKm > caps.MaxRangeKm {
		return &CapExceededError{
			Field:      "range_km",
			Requested:  rangeKm,
			AllowedMax: caps.MaxRangeKm,
			Tier:       tier,
		}
	}
	if durationHours > caps.MaxDurationHours {
		return &CapExceededError{
			Field:      "duration_hours",
			Requested:  float64(durationHours),
			AllowedMax: float64(caps.MaxDurationHours),
			Tier:       tier,
		}
	}
	return nil
}

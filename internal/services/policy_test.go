package services

import (
	"testing"

	"github.com/pawradius/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveCaps_StrictlyIncreasingAcrossTiers(t *testing.T) {
	free := ResolveCaps(models.TierFree, false)
	premium := ResolveCaps(models.TierPremium, false)
	gold := ResolveCaps(models.TierGold, false)

	assert.Less(t, free.MaxRangeKm, premium.MaxRangeKm)
	assert.Less(t, premium.MaxRangeKm, gold.MaxRangeKm)
	assert.Less(t, free.MaxDurationHours, premium.MaxDurationHours)
	assert.Less(t, premium.MaxDurationHours, gold.MaxDurationHours)
}

func TestResolveCaps_OverrideDominatesEveryTier(t *testing.T) {
	for _, tier := range []string{models.TierFree, models.TierPremium, models.TierGold} {
		base := ResolveCaps(tier, false)
		withCredit := ResolveCaps(tier, true)

		assert.GreaterOrEqual(t, withCredit.MaxRangeKm, base.MaxRangeKm, "tier %s", tier)
		assert.GreaterOrEqual(t, withCredit.MaxDurationHours, base.MaxDurationHours, "tier %s", tier)
		assert.Equal(t, models.CreditRangeKm, withCredit.MaxRangeKm)
		assert.Equal(t, models.CreditDurationHours, withCredit.MaxDurationHours)
	}
}

func TestResolveCaps_UnknownTierFallsBackToFree(t *testing.T) {
	assert.Equal(t, ResolveCaps(models.TierFree, false), ResolveCaps("platinum", false))
}

func TestValidateRequest_WithinCaps(t *testing.T) {
	caps := ResolveCaps(models.TierGold, false)
	assert.Nil(t, ValidateRequest(20, 48, caps, models.TierGold))
}

func TestValidateRequest_FreeTierOverBothAxes(t *testing.T) {
	// Free caps are 10 km / 12 h; a 25 km / 24 h request violates both.
	// Range is reported first.
	caps := ResolveCaps(models.TierFree, false)
	capErr := ValidateRequest(25, 24, caps, models.TierFree)

	assert.NotNil(t, capErr)
	assert.Equal(t, "range_km", capErr.Field)
	assert.Equal(t, 25.0, capErr.Requested)
	assert.Equal(t, 10.0, capErr.AllowedMax)
	assert.Equal(t, models.TierFree, capErr.Tier)
}

func TestValidateRequest_DurationOnlyViolation(t *testing.T) {
	caps := ResolveCaps(models.TierFree, false)
	capErr := ValidateRequest(5, 24, caps, models.TierFree)

	assert.NotNil(t, capErr)
	assert.Equal(t, "duration_hours", capErr.Field)
	assert.Equal(t, 12.0, capErr.AllowedMax)
}

func TestValidateRequest_ExactCapAllowed(t *testing.T) {
	caps := ResolveCaps(models.TierFree, false)
	assert.Nil(t, ValidateRequest(10, 12, caps, models.TierFree))
}

func TestValidateRequest_CreditCeilingApplies(t *testing.T) {
	caps := ResolveCaps(models.TierFree, true)
	assert.Nil(t, ValidateRequest(150, 72, caps, models.TierFree))
	assert.NotNil(t, ValidateRequest(151, 72, caps, models.TierFree))
}

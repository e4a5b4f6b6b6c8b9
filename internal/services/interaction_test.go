package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/pawradius/backend/internal/models"
	"github.com/pawradius/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeLedger mirrors the Postgres ledger semantics in memory: interaction
// rows are the source of truth, counters are their cache.
type fakeLedger struct {
	rows          map[string]bool
	supportCounts map[uint]int
	reportCounts  map[uint]int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		rows:          make(map[string]bool),
		supportCounts: make(map[uint]int),
		reportCounts:  make(map[uint]int),
	}
}

func ledgerKey(alertID, userID uint, kind string) string {
	return fmt.Sprintf("%d/%d/%s", alertID, userID, kind)
}

func (f *fakeLedger) ToggleSupport(alertID, userID uint) (bool, int, error) {
	key := ledgerKey(alertID, userID, models.InteractionSupport)
	if f.rows[key] {
		delete(f.rows, key)
		if f.supportCounts[alertID] > 0 {
			f.supportCounts[alertID]--
		}
		return false, f.supportCounts[alertID], nil
	}
	f.rows[key] = true
	f.supportCounts[alertID]++
	return true, f.supportCounts[alertID], nil
}

func (f *fakeLedger) CreateReport(alertID, userID uint) (int, error) {
	key := ledgerKey(alertID, userID, models.InteractionReport)
	if f.rows[key] {
		return 0, repositories.ErrDuplicateInteraction
	}
	f.rows[key] = true
	f.reportCounts[alertID]++
	return f.reportCounts[alertID], nil
}

func (f *fakeLedger) hasRow(alertID, userID uint, kind string) bool {
	return f.rows[ledgerKey(alertID, userID, kind)]
}

func newInteractionFixture(t *testing.T) (*InteractionService, *fakeLedger, *models.BroadcastAlert) {
	t.Helper()
	ledger := newFakeLedger()
	alert := &models.BroadcastAlert{ID: 1, CreatorID: 9, IsActive: true, ExpiresAt: time.Now().Add(time.Hour)}

	alertRepo := new(MockAlertRepository)
	alertRepo.On("GetAlertByID", uint(1)).Return(alert, nil)
	alertRepo.On("Deactivate", uint(1)).Run(func(args mock.Arguments) {
		alert.IsActive = false
	}).Return(nil)

	return NewInteractionService(ledger, alertRepo), ledger, alert
}

func TestSupport_ToggleReturnsCounterToOriginal(t *testing.T) {
	svc, ledger, _ := newInteractionFixture(t)

	first, err := svc.Support(1, 42)
	assert.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, 1, first.SupportCount)
	assert.True(t, ledger.hasRow(1, 42, models.InteractionSupport))

	second, err := svc.Support(1, 42)
	assert.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, 0, second.SupportCount)
	assert.False(t, ledger.hasRow(1, 42, models.InteractionSupport))
}

func TestSupport_IndependentUsersAccumulate(t *testing.T) {
	svc, _, _ := newInteractionFixture(t)

	for u := uint(10); u < 13; u++ {
		_, err := svc.Support(1, u)
		assert.NoError(t, err)
	}
	result, err := svc.Support(1, 13)
	assert.NoError(t, err)
	assert.Equal(t, 4, result.SupportCount)
}

func TestReport_DuplicateRejected(t *testing.T) {
	svc, _, _ := newInteractionFixture(t)

	first, err := svc.Report(1, 42)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.ReportCount)

	_, err = svc.Report(1, 42)
	assert.ErrorIs(t, err, ErrAlreadyReported)
}

func TestReport_TenthReportLeavesAlertActive(t *testing.T) {
	svc, _, alert := newInteractionFixture(t)

	var last *ReportResult
	for u := uint(100); u < 110; u++ {
		var err error
		last, err = svc.Report(1, u)
		assert.NoError(t, err)
	}

	assert.Equal(t, 10, last.ReportCount)
	assert.False(t, last.AutoHidden)
	assert.True(t, alert.IsActive)
}

func TestReport_EleventhReportAutoHidesInSameCall(t *testing.T) {
	svc, _, alert := newInteractionFixture(t)

	for u := uint(100); u < 110; u++ {
		_, err := svc.Report(1, u)
		assert.NoError(t, err)
	}

	// The tipping reporter must observe the hide in their own request.
	result, err := svc.Report(1, 110)
	assert.NoError(t, err)
	assert.Equal(t, 11, result.ReportCount)
	assert.True(t, result.AutoHidden)
	assert.False(t, alert.IsActive)
}

func TestReport_UnknownAlert(t *testing.T) {
	ledger := newFakeLedger()
	alertRepo := new(MockAlertRepository)
	alertRepo.On("GetAlertByID", uint(404)).Return(nil, assert.AnError)
	svc := NewInteractionService(ledger, alertRepo)

	_, err := svc.Report(404, 1)
	assert.Error(t, err)
}

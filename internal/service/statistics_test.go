package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

func TestLicenseStatistics(t *testing.T) {
	db := newTestDB(t)
	licenses := NewLicenseService(db, newTestCipher(t), zap.NewNop())
	ctx := context.Background()

	keys := make(map[uint]string)
	for _, limit := range []int{3, 5} {
		b := createBusiness(t, db, model.Business{})
		key, err := licenses.Generate(ctx, b.ID, limit)
		require.NoError(t, err)
		keys[b.ID] = key
	}
	for id, key := range keys {
		_, err := licenses.Validate(ctx, ValidationRequest{BusinessID: id, Key: key})
		require.NoError(t, err)
		_, err = licenses.Validate(ctx, ValidationRequest{BusinessID: id, Key: "bad"})
		require.Error(t, err)
	}

	var first model.License
	require.NoError(t, db.First(&first).Error)
	_, err := licenses.SetStatus(ctx, first.ID, model.StatusRevoked, 1)
	require.NoError(t, err)

	// An old attempt outside the window.
	require.NoError(t, db.Create(&model.LicenseUsage{
		Action: model.ActionValidate, Success: true, Timestamp: time.Now().UTC().AddDate(0, 0, -60),
	}).Error)

	now := time.Now().UTC()
	stats, err := NewStatisticsService(db).LicenseStatistics(ctx, now.AddDate(0, 0, -6), now)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalLicenses)
	assert.Equal(t, int64(1), stats.GetLicensesByStatus(model.StatusActive))
	assert.Equal(t, int64(1), stats.GetLicensesByStatus(model.StatusRevoked))
	assert.Equal(t, int64(0), stats.GetLicensesByStatus(model.StatusPending))
	assert.Equal(t, int64(4), stats.TotalValidations)
	assert.Equal(t, int64(2), stats.FailedValidations)
	assert.InDelta(t, 0.5, stats.GetSuccessRate(), 0.001)

	// Only the license still Active counts; each lost one seat.
	assert.Equal(t, int64(2+4-first.StaffLimit), stats.RemainingSeats)

	assert.Len(t, stats.DailyUsage, 7)
	today := stats.GetDailyUsageByDate(now.Format("2006-01-02"))
	require.NotNil(t, today)
	assert.Equal(t, 4, today.TotalChecks)
	assert.Equal(t, 2, today.FailedChecks)
}

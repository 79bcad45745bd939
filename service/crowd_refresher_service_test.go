package services

import (
	"context"
	"testing"
	"time"

	"crowd-server/crowd"
	"crowd-server/dao/redis"
	"crowd-server/dataset"
	"crowd-server/db"
	"crowd-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRefresher(t *testing.T, daysAhead int) (*CrowdRefresherService, *redis.RedisCrowdDAO, *fakeNagerAPI) {
	t.Helper()
	dao := redis.NewRedisCrowdDAO(db.NewMockRedisClient(context.Background()))
	fake := &fakeNagerAPI{holidays: map[int][]models.NagerPublicHoliday{
		2026: {{Date: "2026-10-02", LocalName: "Gandhi Jayanti", CountryCode: "IN"}},
	}}
	service := NewCrowdService(crowd.NewEstimator(dataset.Default(), 0), dao, fake, 7, "IN")
	service.now = func() time.Time { return mustDate("2026-10-16") }
	return NewCrowdRefresherService(service, dao, daysAhead), dao, fake
}

func TestCrowdRefresherService_Refresh(t *testing.T) {
	refresher, dao, fake := newRefresher(t, 2)
	require.NoError(t, dao.SetHeatmapSnapshot(&models.HeatmapSnapshot{Date: "2026-10-10"}))

	require.NoError(t, refresher.Refresh(context.Background()))

	dates, err := dao.ListSnapshotDates()
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-16", "2026-10-17", "2026-10-18"}, dates)

	nearby, err := dao.GetNearbyHotspots(12.998, 77.592, 1)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "Bengaluru Palace", nearby[0].Name)

	holidays, err := dao.GetPublicHolidays("IN", 2026)
	require.NoError(t, err)
	require.NotNil(t, holidays)
	assert.Len(t, holidays.Holidays, 1)
	assert.Equal(t, []int{2026}, fake.calls)
}

func TestCrowdRefresherService_RefreshIsRepeatable(t *testing.T) {
	refresher, dao, _ := newRefresher(t, 0)

	require.NoError(t, refresher.Refresh(context.Background()))
	require.NoError(t, refresher.Refresh(context.Background()))

	dates, err := dao.ListSnapshotDates()
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-16"}, dates)

	all, err := dao.GetNearbyHotspots(14, 76, 1000)
	require.NoError(t, err)
	assert.Len(t, all, len(dataset.Default().Hotspots))
}

func TestCrowdRefresherService_PeriodicJobStopsWithContext(t *testing.T) {
	refresher, dao, _ := newRefresher(t, 0)
	ctx, cancel := context.WithCancel(context.Background())

	refresher.StartPeriodicJob(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		dates, err := dao.ListSnapshotDates()
		return err == nil && len(dates) == 1
	}, time.Second, 10*time.Millisecond)
	cancel()
}

package services

import (
	"context"
	"time"

	"crowd-server/crowd"
	"crowd-server/dao/redis"

	log "github.com/sirupsen/logrus"
)

// CrowdRefresherService keeps the geo index and the derived caches warm.
type CrowdRefresherService struct {
	crowdService *CrowdService
	crowdDao     *redis.RedisCrowdDAO
	daysAhead    int
}

// NewCrowdRefresherService constructs a new refresher with dependencies.
func NewCrowdRefresherService(
	crowdService *CrowdService,
	crowdDao *redis.RedisCrowdDAO,
	daysAhead int,
) *CrowdRefresherService {
	return &CrowdRefresherService{
		crowdService: crowdService,
		crowdDao:     crowdDao,
		daysAhead:    daysAhead,
	}
}

// StartPeriodicJob launches the background loop at the given interval. The
// loop ends when ctx is cancelled.
func (cr *CrowdRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go cr.startPeriodicJob(ctx, interval)
}

func (cr *CrowdRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("[CrowdRefresherService] Periodic job stopped.")
			return
		case <-ticker.C:
			log.Info("[CrowdRefresherService] Running periodic crowd refresher job.")
			if err := cr.Refresh(ctx); err != nil {
				log.Errorf("[CrowdRefresherService] Refresh returned error: %v", err)
			} else {
				log.Info("[CrowdRefresherService] Refresh completed successfully.")
			}
		}
	}
}

// Refresh runs the four steps: index hotspots, rebuild upcoming heatmaps,
// refresh the holiday cache and drop past snapshots.
func (cr *CrowdRefresherService) Refresh(ctx context.Context) error {
	today := cr.crowdService.Today()

	if err := cr.indexHotspots(); err != nil {
		return err
	}
	cr.refreshHeatmaps(today)
	cr.refreshHolidays(ctx, today.Year())
	return cr.dropStaleSnapshots(today)
}

func (cr *CrowdRefresherService) indexHotspots() error {
	hotspots := cr.crowdService.ListHotspots()
	log.Infof("[CrowdRefresherService] Indexing %d hotspots", len(hotspots))
	for _, h := range hotspots {
		if err := cr.crowdDao.UpsertHotspot(h); err != nil {
			log.Errorf("[CrowdRefresherService] Upsert failed for %s: %v", h.ToString(), err)
			return err
		}
	}
	return nil
}

func (cr *CrowdRefresherService) refreshHeatmaps(today time.Time) {
	for i := 0; i <= cr.daysAhead; i++ {
		day := today.AddDate(0, 0, i)
		snapshot, err := cr.crowdService.RefreshHeatmap(day)
		if err != nil {
			log.Errorf("[CrowdRefresherService] Heatmap refresh failed for %s: %v", crowd.FormatDate(day), err)
			continue
		}
		log.Debugf("[CrowdRefresherService] Heatmap %s cached, average level %.1f", snapshot.Date, snapshot.AverageLevel)
	}
}

func (cr *CrowdRefresherService) refreshHolidays(ctx context.Context, year int) {
	cc := cr.crowdService.DefaultCountry()
	list, err := cr.crowdService.RefreshPublicHolidays(ctx, cc, year)
	if err != nil {
		log.Errorf("[CrowdRefresherService] Holiday refresh failed for %s/%d: %v", cc, year, err)
		return
	}
	log.Infof("[CrowdRefresherService] %d holidays for %s/%d", len(list.Holidays), cc, year)
}

func (cr *CrowdRefresherService) dropStaleSnapshots(today time.Time) error {
	dates, err := cr.crowdDao.ListSnapshotDates()
	if err != nil {
		log.Errorf("[CrowdRefresherService] Error listing cached snapshots: %v", err)
		return err
	}
	cutoff := crowd.FormatDate(today)
	for _, d := range dates {
		// YYYY-MM-DD strings order like the dates they name.
		if d >= cutoff {
			continue
		}
		log.Debugf("[CrowdRefresherService] Removing stale heatmap %s", d)
		if err := cr.crowdDao.DeleteHeatmapSnapshot(d); err != nil {
			log.Warnf("[CrowdRefresherService] Failed to delete stale heatmap %s: %v", d, err)
		}
	}
	return nil
}

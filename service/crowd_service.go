package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"crowd-server/api/nager"
	"crowd-server/crowd"
	"crowd-server/dao/redis"
	"crowd-server/geo"
	"crowd-server/models"
	"crowd-server/models/calendar"
	"crowd-server/models/hotspot"

	log "github.com/sirupsen/logrus"
)

// CrowdService exposes the crowd estimates together with the cached data
// derived from them.
type CrowdService struct {
	estimator      *crowd.Estimator
	crowdDao       *redis.RedisCrowdDAO
	nagerApi       nager.NagerAPI
	h3Resolution   int
	defaultCountry string
	now            func() time.Time
}

// NewCrowdService constructs a CrowdService.
func NewCrowdService(
	estimator *crowd.Estimator,
	crowdDao *redis.RedisCrowdDAO,
	nagerApi nager.NagerAPI,
	h3Resolution int,
	defaultCountry string) *CrowdService {

	return &CrowdService{
		estimator:      estimator,
		crowdDao:       crowdDao,
		nagerApi:       nagerApi,
		h3Resolution:   h3Resolution,
		defaultCountry: strings.ToUpper(defaultCountry),
		now:            crowd.Today,
	}
}

// Today is the current civil date in UTC.
func (cs *CrowdService) Today() time.Time {
	return cs.now()
}

func (cs *CrowdService) DefaultCountry() string {
	return cs.defaultCountry
}

func (cs *CrowdService) ListHotspots() []hotspot.Hotspot {
	return cs.estimator.Hotspots()
}

// GetHotspotCrowd estimates the crowd at the named hotspot on date.
func (cs *CrowdService) GetHotspotCrowd(name string, date time.Time) (*hotspot.HotspotCrowd, error) {
	h, ok := cs.estimator.FindHotspot(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrHotspotNotFound, name)
	}
	c := hotspotCrowd(h, date)
	return &c, nil
}

func hotspotCrowd(h hotspot.Hotspot, date time.Time) hotspot.HotspotCrowd {
	level := crowd.CrowdLevel(h, date)
	rec := crowd.Recommend(level)
	return hotspot.HotspotCrowd{
		Hotspot:        h,
		Date:           crowd.FormatDate(date),
		CrowdLevel:     level,
		Level:          crowd.LevelOf(level),
		Color:          crowd.ColorForLevel(crowd.LevelOf(level)),
		Recommendation: &rec,
	}
}

// GetNearbyHotspots returns the indexed hotspots within radiusKm, nearest
// first, each with its crowd estimate for date.
func (cs *CrowdService) GetNearbyHotspots(lat, lon, radiusKm float64, date time.Time) ([]hotspot.HotspotCrowd, error) {
	if !isFinite(lat) || !isFinite(lon) || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return nil, fmt.Errorf("%w: coordinates (%v, %v) out of range", ErrInvalidArgument, lat, lon)
	}
	if !isFinite(radiusKm) || radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", ErrInvalidArgument)
	}

	hotspots, err := cs.crowdDao.GetNearbyHotspots(lat, lon, radiusKm)
	if err != nil {
		return nil, err
	}

	out := make([]hotspot.HotspotCrowd, 0, len(hotspots))
	for _, h := range hotspots {
		c := hotspotCrowd(h, date)
		d := math.Round(geo.HaversineKm(lat, lon, h.Lat, h.Lng)*100) / 100
		c.DistanceKm = &d
		out = append(out, c)
	}
	return out, nil
}

func (cs *CrowdService) ResolveDistrict(destination string) string {
	return cs.estimator.FindDistrict(destination)
}

func (cs *CrowdService) GetDailyIntensity(district string, date time.Time) calendar.DayIntensity {
	return cs.estimator.DailyIntensity(district, date)
}

func (cs *CrowdService) GetTripCalendar(destination string, start, end time.Time) (*calendar.TripCalendar, error) {
	return cs.estimator.TripCalendar(destination, start, end)
}

// GetHeatmap serves the cached snapshot for date, building and caching it
// on a miss.
func (cs *CrowdService) GetHeatmap(date time.Time) (*models.HeatmapSnapshot, error) {
	cached, err := cs.crowdDao.GetHeatmapSnapshot(crowd.FormatDate(date))
	if err != nil {
		log.Warnf("[CrowdService] Reading cached heatmap failed, rebuilding: %v", err)
	}
	if cached != nil && cached.H3Resolution == cs.h3Resolution {
		return cached, nil
	}
	return cs.RefreshHeatmap(date)
}

// RefreshHeatmap rebuilds the snapshot for date and stores it.
func (cs *CrowdService) RefreshHeatmap(date time.Time) (*models.HeatmapSnapshot, error) {
	snapshot, err := cs.estimator.Heatmap(date, cs.h3Resolution)
	if err != nil {
		return nil, fmt.Errorf("failed to build heatmap for %s: %w", crowd.FormatDate(date), err)
	}
	if err := cs.crowdDao.SetHeatmapSnapshot(snapshot); err != nil {
		log.Warnf("[CrowdService] Could not cache heatmap %s: %v", snapshot.Date, err)
	}
	return snapshot, nil
}

// GetPublicHolidays serves the cached list for a country and year, falling
// back to the API and then to the built-in defaults.
func (cs *CrowdService) GetPublicHolidays(ctx context.Context, countryCode string, year int) (*models.HolidayList, error) {
	cc, err := normalizeCountry(countryCode)
	if err != nil {
		return nil, err
	}

	cached, err := cs.crowdDao.GetPublicHolidays(cc, year)
	if err != nil {
		log.Warnf("[CrowdService] Reading cached holidays failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}
	return cs.RefreshPublicHolidays(ctx, cc, year)
}

// RefreshPublicHolidays fetches the list from the API and caches it. When
// the API fails the defaults are returned without being cached.
func (cs *CrowdService) RefreshPublicHolidays(ctx context.Context, countryCode string, year int) (*models.HolidayList, error) {
	cc, err := normalizeCountry(countryCode)
	if err != nil {
		return nil, err
	}

	fetched, err := cs.nagerApi.GetPublicHolidays(ctx, year, cc)
	if err != nil {
		log.Warnf("[CrowdService] Holiday API error for %s/%d, using defaults: %v", cc, year, err)
		return nager.DefaultHolidays(cc, year), nil
	}

	list := nager.FromNager(cc, year, fetched)
	if err := cs.crowdDao.SetPublicHolidays(list); err != nil {
		log.Warnf("[CrowdService] Could not cache holidays %s/%d: %v", cc, year, err)
	}
	return list, nil
}

// ForecastRequest is the caller input of GetForecast. An empty CountryCode
// selects the default country.
type ForecastRequest struct {
	Destination string
	Date        time.Time
	CountryCode string
	Hour        *int
	Weather     *models.WeatherConditions
}

// GetForecast combines the multi-factor forecast with the public holidays
// of the requested country.
func (cs *CrowdService) GetForecast(ctx context.Context, req ForecastRequest) (*models.CrowdForecast, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, fmt.Errorf("%w: destination is required", ErrInvalidArgument)
	}
	if req.Hour != nil && (*req.Hour < 0 || *req.Hour > 23) {
		return nil, fmt.Errorf("%w: hour %d out of range", ErrInvalidArgument, *req.Hour)
	}
	cc := req.CountryCode
	if cc == "" {
		cc = cs.defaultCountry
	}

	// Adjacent days matter for long weekends, which may cross a year boundary.
	holidays := crowd.NewHolidaySet()
	for _, year := range yearsAround(req.Date) {
		list, err := cs.GetPublicHolidays(ctx, cc, year)
		if err != nil {
			return nil, err
		}
		for _, h := range list.Holidays {
			holidays[h.Date] = struct{}{}
		}
	}

	forecast := cs.estimator.Forecast(crowd.ForecastInput{
		Destination: req.Destination,
		Date:        req.Date,
		CountryCode: strings.ToUpper(cc),
		Hour:        req.Hour,
		Weather:     req.Weather,
		Holidays:    holidays,
	})
	return &forecast, nil
}

func yearsAround(date time.Time) []int {
	prev, next := date.AddDate(0, 0, -1).Year(), date.AddDate(0, 0, 1).Year()
	years := []int{date.Year()}
	if prev != date.Year() {
		years = append(years, prev)
	}
	if next != date.Year() {
		years = append(years, next)
	}
	return years
}

func normalizeCountry(countryCode string) (string, error) {
	cc := strings.ToUpper(strings.TrimSpace(countryCode))
	if len(cc) != 2 || cc[0] < 'A' || cc[0] > 'Z' || cc[1] < 'A' || cc[1] > 'Z' {
		return "", fmt.Errorf("%w: country code %q", ErrInvalidArgument, countryCode)
	}
	return cc, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

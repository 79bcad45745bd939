package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"crowd-server/db"
	"crowd-server/models"
	"crowd-server/models/hotspot"

	log "github.com/sirupsen/logrus"
)

const HOTSPOTS_GEO_KEY_V1 = "hotspots_geo_v1"
const HOTSPOTS_GEO_MEMBER_FORMAT_V1 = "hotspots_geo_place_v1:%s"
const HEATMAP_SNAPSHOT_KEY_PREFIX_V1 = "heatmap_snapshot_v1:"
const PUBLIC_HOLIDAYS_KEY_FORMAT_V1 = "public_holidays_v1:%s_%d"

// Holiday lists change rarely; a day keeps the cache fresh enough.
const PUBLIC_HOLIDAYS_TTL = 24 * time.Hour

// RedisCrowdDAO stores the hotspot geo index and the derived caches.
type RedisCrowdDAO struct {
	client db.RedisClient
}

// NewRedisCrowdDAO initializes a RedisCrowdDAO with the Redis client.
func NewRedisCrowdDAO(client db.RedisClient) *RedisCrowdDAO {
	return &RedisCrowdDAO{client: client}
}

func hotspotMemberKey(name string) string {
	return fmt.Sprintf(HOTSPOTS_GEO_MEMBER_FORMAT_V1, strings.ToLower(strings.ReplaceAll(name, " ", "_")))
}

// UpsertHotspot stores the hotspot as a geolocation with its JSON data.
func (dao *RedisCrowdDAO) UpsertHotspot(h hotspot.Hotspot) error {
	ctx := dao.client.GetContext()
	return dao.client.AddLocationWithJSON(ctx, HOTSPOTS_GEO_KEY_V1, hotspotMemberKey(h.Name), h.Lat, h.Lng, h)
}

// GetNearbyHotspots returns the hotspots within radiusKm of (lat, lon), nearest first.
func (dao *RedisCrowdDAO) GetNearbyHotspots(lat, lon, radiusKm float64) ([]hotspot.Hotspot, error) {
	hotspotsJSON, err := dao.client.GetLocationsWithinRadius(HOTSPOTS_GEO_KEY_V1, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisCrowdDAO] failed to get hotspots: %w", err)
	}

	hotspots := make([]hotspot.Hotspot, len(hotspotsJSON))
	for i, hotspotJSON := range hotspotsJSON {
		if err := json.Unmarshal([]byte(hotspotJSON), &hotspots[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal hotspot JSON: %w", err)
		}
	}
	log.Debugf("[RedisCrowdDAO] Found %d hotspots within %.1f km", len(hotspots), radiusKm)
	return hotspots, nil
}

// SetHeatmapSnapshot caches the snapshot under its date.
func (dao *RedisCrowdDAO) SetHeatmapSnapshot(s *models.HeatmapSnapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal heatmap snapshot for %s: %w", s.Date, err)
	}
	if err := dao.client.Set(HEATMAP_SNAPSHOT_KEY_PREFIX_V1+s.Date, string(data)); err != nil {
		return fmt.Errorf("failed to set heatmap snapshot in redis: %w", err)
	}
	return nil
}

// GetHeatmapSnapshot returns the cached snapshot for date, or nil on a cache miss.
func (dao *RedisCrowdDAO) GetHeatmapSnapshot(date string) (*models.HeatmapSnapshot, error) {
	str, err := dao.client.Get(HEATMAP_SNAPSHOT_KEY_PREFIX_V1 + date)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get heatmap snapshot from redis: %w", err)
	}
	var s models.HeatmapSnapshot
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal heatmap snapshot JSON: %w", err)
	}
	return &s, nil
}

// ListSnapshotDates returns the dates with a cached snapshot, ascending.
func (dao *RedisCrowdDAO) ListSnapshotDates() ([]string, error) {
	keys, err := dao.client.Keys(HEATMAP_SNAPSHOT_KEY_PREFIX_V1 + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list heatmap snapshots: %w", err)
	}
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, HEATMAP_SNAPSHOT_KEY_PREFIX_V1))
	}
	sort.Strings(dates)
	return dates, nil
}

func (dao *RedisCrowdDAO) DeleteHeatmapSnapshot(date string) error {
	if err := dao.client.Del(HEATMAP_SNAPSHOT_KEY_PREFIX_V1 + date); err != nil {
		return fmt.Errorf("failed to delete heatmap snapshot %s: %w", date, err)
	}
	return nil
}

// SetPublicHolidays caches a country's holiday list for a year.
func (dao *RedisCrowdDAO) SetPublicHolidays(list *models.HolidayList) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal holidays for %s/%d: %w", list.CountryCode, list.Year, err)
	}
	key := fmt.Sprintf(PUBLIC_HOLIDAYS_KEY_FORMAT_V1, list.CountryCode, list.Year)
	if err := dao.client.SetWithTTL(key, string(data), PUBLIC_HOLIDAYS_TTL); err != nil {
		return fmt.Errorf("failed to set holidays in redis: %w", err)
	}
	return nil
}

// GetPublicHolidays returns the cached list, or nil on a cache miss.
func (dao *RedisCrowdDAO) GetPublicHolidays(countryCode string, year int) (*models.HolidayList, error) {
	str, err := dao.client.Get(fmt.Sprintf(PUBLIC_HOLIDAYS_KEY_FORMAT_V1, countryCode, year))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays from redis: %w", err)
	}
	var list models.HolidayList
	if err := json.Unmarshal([]byte(str), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal holidays JSON: %w", err)
	}
	return &list, nil
}

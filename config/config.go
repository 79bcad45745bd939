package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Server config
const HTTP_SERVER_ADDRESS = ":8080"
const HTTP_SHUTDOWN_TIMEOUT_SECONDS = 5

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Refresher config
const CROWD_REFRESHER_SCHEDULE_MINUTES = 60
const HEATMAP_SNAPSHOT_DAYS_AHEAD = 7

// Crowd estimation config
const HEATMAP_H3_RESOLUTION = 7
const MAX_TRIP_DAYS = 366
const DEFAULT_COUNTRY_CODE = "IN"
const DEFAULT_NEARBY_RADIUS_KM = 25.0

// Nager public holidays API
const NAGER_ENDPOINT_BASE_V3 = "https://date.nager.at/api/v3"
const NAGER_TIMEOUT_SECONDS = 10

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PUBLIC_HOLIDAYS_RESOURCE = "public_holidays.json"

const ENV_PREFIX = "crowd"
const CONFIG_FILE_NAME = "config"

// Config is the runtime configuration. Every field can be overridden from
// config.yaml in the project root or from CROWD_* environment variables
// (CROWD_REDIS_ADDRESS, CROWD_LOG_LEVEL, ...).
type Config struct {
	Env                   string
	LogLevel              string
	HTTPAddress           string
	ShutdownTimeout       time.Duration
	RedisAddress          string
	RedisPassword         string
	RedisDB               int
	NagerEndpoint         string
	NagerTimeout          time.Duration
	DefaultCountryCode    string
	RefresherInterval     time.Duration
	SnapshotDaysAhead     int
	H3Resolution          int
	MaxTripDays           int
	DefaultNearbyRadiusKm float64
	HotspotsFile          string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("http.address", HTTP_SERVER_ADDRESS)
	v.SetDefault("http.shutdown_timeout_seconds", HTTP_SHUTDOWN_TIMEOUT_SECONDS)
	v.SetDefault("redis.address", REDIS_DB_ADDRESS)
	v.SetDefault("redis.password", REDIS_DB_PASSWORD)
	v.SetDefault("redis.db", REDIS_DB)
	v.SetDefault("nager.endpoint", NAGER_ENDPOINT_BASE_V3)
	v.SetDefault("nager.timeout_seconds", NAGER_TIMEOUT_SECONDS)
	v.SetDefault("holidays.default_country", DEFAULT_COUNTRY_CODE)
	v.SetDefault("refresher.schedule_minutes", CROWD_REFRESHER_SCHEDULE_MINUTES)
	v.SetDefault("refresher.snapshot_days_ahead", HEATMAP_SNAPSHOT_DAYS_AHEAD)
	v.SetDefault("heatmap.h3_resolution", HEATMAP_H3_RESOLUTION)
	v.SetDefault("trip.max_days", MAX_TRIP_DAYS)
	v.SetDefault("nearby.default_radius_km", DEFAULT_NEARBY_RADIUS_KM)
	v.SetDefault("hotspots.file", "")
}

// Load reads the configuration from defaults, the optional config file and
// the environment, in increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(CONFIG_FILE_NAME)
	v.SetConfigType("yaml")
	v.AddConfigPath(BaseDir())

	v.AutomaticEnv()
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Env:                   v.GetString("env"),
		LogLevel:              v.GetString("log.level"),
		HTTPAddress:           v.GetString("http.address"),
		ShutdownTimeout:       time.Duration(v.GetInt("http.shutdown_timeout_seconds")) * time.Second,
		RedisAddress:          v.GetString("redis.address"),
		RedisPassword:         v.GetString("redis.password"),
		RedisDB:               v.GetInt("redis.db"),
		NagerEndpoint:         v.GetString("nager.endpoint"),
		NagerTimeout:          time.Duration(v.GetInt("nager.timeout_seconds")) * time.Second,
		DefaultCountryCode:    strings.ToUpper(v.GetString("holidays.default_country")),
		RefresherInterval:     time.Duration(v.GetInt("refresher.schedule_minutes")) * time.Minute,
		SnapshotDaysAhead:     v.GetInt("refresher.snapshot_days_ahead"),
		H3Resolution:          v.GetInt("heatmap.h3_resolution"),
		MaxTripDays:           v.GetInt("trip.max_days"),
		DefaultNearbyRadiusKm: v.GetFloat64("nearby.default_radius_km"),
		HotspotsFile:          v.GetString("hotspots.file"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the services cannot run with.
func (c *Config) Validate() error {
	if c.RefresherInterval <= 0 {
		return fmt.Errorf("refresher interval must be positive, got %v", c.RefresherInterval)
	}
	if c.SnapshotDaysAhead < 0 {
		return fmt.Errorf("snapshot days ahead must not be negative, got %d", c.SnapshotDaysAhead)
	}
	if c.H3Resolution > 15 {
		return fmt.Errorf("h3 resolution must be at most 15, got %d", c.H3Resolution)
	}
	if c.MaxTripDays <= 0 {
		return fmt.Errorf("max trip days must be positive, got %d", c.MaxTripDays)
	}
	if len(c.DefaultCountryCode) != 2 {
		return fmt.Errorf("default country must be a two letter code, got %q", c.DefaultCountryCode)
	}
	return nil
}

// IsProd reports whether real backends should be used.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

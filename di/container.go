package di

import (
	"context"
	"fmt"

	"crowd-server/api"
	"crowd-server/api/nager"
	"crowd-server/config"
	"crowd-server/crowd"
	"crowd-server/dao/redis"
	"crowd-server/dataset"
	"crowd-server/db"
	"crowd-server/server"
	"crowd-server/server/handlers"
	services "crowd-server/service"
	"crowd-server/util"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Container holds all application dependencies.
type Container struct {
	Config                *config.Config
	RedisClient           db.RedisClient
	RedisCrowdDao         *redis.RedisCrowdDAO
	NagerAPI              nager.NagerAPI
	Estimator             *crowd.Estimator
	CrowdService          *services.CrowdService
	CrowdRefresherService *services.CrowdRefresherService
	MuxRouter             *mux.Router
	Router                *server.Router
	CrowdHttpServer       *server.CrowdHttpServer
}

// NewContainer initializes and wires up all dependencies. Outside prod the
// in-memory Redis mock and the fixture-backed holiday API are used.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Infof("[Container] initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	var redisClient db.RedisClient
	if cfg.IsProd() {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		log.Infof("[Container] Using redis at %s", cfg.RedisAddress)
	} else {
		redisClient = db.NewMockRedisClient(ctx)
		log.Info("[Container] Using in-memory redis mock")
	}
	if err := redisClient.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	redisCrowdDao := redis.NewRedisCrowdDAO(redisClient)

	var nagerApi nager.NagerAPI
	if cfg.IsProd() {
		log.Info("[Container] Using prod nager api")
		nagerApi = nager.NewNagerApiClient(api.NewHTTPClient(cfg.NagerEndpoint, cfg.NagerTimeout))
	} else {
		log.Info("[Container] Using mock nager api")
		nagerApi = nager.NewNagerApiClientMock(config.GetResourcePath(config.PUBLIC_HOLIDAYS_RESOURCE))
	}

	data, err := loadDataset(cfg.HotspotsFile)
	if err != nil {
		return nil, err
	}
	estimator := crowd.NewEstimator(data, cfg.MaxTripDays)

	crowdService := services.NewCrowdService(estimator, redisCrowdDao, nagerApi, cfg.H3Resolution, cfg.DefaultCountryCode)
	crowdRefresherService := services.NewCrowdRefresherService(crowdService, redisCrowdDao, cfg.SnapshotDaysAhead)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(
		handlers.NewHotspotHandler(crowdService, cfg.DefaultNearbyRadiusKm),
		handlers.NewCalendarHandler(crowdService),
		handlers.NewHeatmapHandler(crowdService),
		handlers.NewHolidayHandler(crowdService),
		handlers.NewForecastHandler(crowdService),
		muxRouter,
	)
	crowdHttpServer := server.NewCrowdHttpServer(router, muxRouter, cfg.HTTPAddress, cfg.ShutdownTimeout)

	return &Container{
		Config:                cfg,
		RedisClient:           redisClient,
		RedisCrowdDao:         redisCrowdDao,
		NagerAPI:              nagerApi,
		Estimator:             estimator,
		CrowdService:          crowdService,
		CrowdRefresherService: crowdRefresherService,
		MuxRouter:             muxRouter,
		Router:                router,
		CrowdHttpServer:       crowdHttpServer,
	}, nil
}

// loadDataset returns the shipped dataset, with its hotspot catalog replaced
// by the one in hotspotsFile when set.
func loadDataset(hotspotsFile string) (*dataset.Dataset, error) {
	if hotspotsFile == "" {
		return dataset.Default(), nil
	}
	hotspots, err := util.ReadHotspotsFromJSON(hotspotsFile)
	if err != nil {
		return nil, err
	}
	data := *dataset.Default()
	data.Hotspots = hotspots
	if err := dataset.Validate(&data); err != nil {
		return nil, fmt.Errorf("invalid hotspots file %q: %w", hotspotsFile, err)
	}
	log.Infof("[Container] Loaded %d hotspots from %s", len(hotspots), hotspotsFile)
	return &data, nil
}

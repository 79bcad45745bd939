package main

import (
	"context"
	"os"

	"crowd-server/config"
	"crowd-server/di"

	log "github.com/sirupsen/logrus"
)

func configureLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("[Main] Unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] Failed to load config: %v", err)
	}
	configureLogging(cfg.LogLevel)

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("[Main] Failed to build container: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("[Main] Refreshing crowd data")
	if err := container.CrowdRefresherService.Refresh(ctx); err != nil {
		log.Errorf("[Main] Initial refresh failed: %v", err)
	}
	log.Infof("[Main] Starting periodic job every %v", cfg.RefresherInterval)
	container.CrowdRefresherService.StartPeriodicJob(ctx, cfg.RefresherInterval)

	if err := container.CrowdHttpServer.Start(cancel); err != nil {
		log.Fatalf("[Main] Server error: %v", err)
	}
}

package main

import (
	"github.com/mahaatv/backend/internal/di"
	"github.com/mahaatv/backend/internal/pkg/config"
	"github.com/mahaatv/backend/internal/pkg/logger"
)

func main() {
	// Initialize logger
	logger.Init("info", true, nil)
	log := logger.Get()

	log.Info().Msg("Starting MahaaTV Backend...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Re-initialize with the configured level
	logger.Init(cfg.Logger.Level, cfg.Logger.Pretty, nil)
	log = logger.Get()

	app, err := di.InitApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	log.Info().
		Str("timezone", cfg.Schedule.Timezone).
		Bool("cache", cfg.Cache.Enabled).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("Application initialized")

	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server terminated")
	}
}

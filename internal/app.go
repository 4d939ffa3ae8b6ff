package internal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mahaatv/backend/internal/infrastructure/scheduler"
	"github.com/mahaatv/backend/internal/interfaces/http"
	"github.com/mahaatv/backend/internal/pkg/config"
	"github.com/mahaatv/backend/internal/pkg/logger"
)

// jobDrainTimeout bounds how long shutdown waits for running jobs
const jobDrainTimeout = 5 * time.Second

// App owns the HTTP server and the background jobs
type App struct {
	cfg       *config.Config
	router    *http.Router
	scheduler *scheduler.Scheduler
}

// NewApp mounts the routes and returns an app ready to run
func NewApp(cfg *config.Config, router *http.Router, jobs *scheduler.Scheduler) *App {
	router.SetupRoutes()
	return &App{cfg: cfg, router: router, scheduler: jobs}
}

// Run serves until SIGINT/SIGTERM or a listener failure, then shuts down
func (a *App) Run() error {
	log := logger.Get()

	a.scheduler.Start()

	serverErr := make(chan error, 1)
	serverAddr := a.cfg.Server.Addr()
	serverLog := logger.WithFields(map[string]interface{}{
		"component": "http",
		"address":   serverAddr,
	})
	go func() {
		serverLog.Info().Msg("Starting HTTP server")
		if err := a.router.Start(serverAddr); err != nil {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server...")
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	jobs := a.scheduler.Stop()
	select {
	case <-jobs.Done():
	case <-time.After(jobDrainTimeout):
		logger.Warn().Msg("Background jobs still running at shutdown")
	}

	if err := a.router.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("Error during shutdown")
	}

	log.Info().Msg("Server stopped")
	return runErr
}

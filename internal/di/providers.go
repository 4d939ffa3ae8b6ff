package di

import (
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/mahaatv/backend/internal/application"
	"github.com/mahaatv/backend/internal/domain"
	"github.com/mahaatv/backend/internal/infrastructure/cache"
	"github.com/mahaatv/backend/internal/infrastructure/catalog"
	"github.com/mahaatv/backend/internal/infrastructure/metrics"
	"github.com/mahaatv/backend/internal/infrastructure/repository/memory"
	"github.com/mahaatv/backend/internal/infrastructure/scheduler"
	"github.com/mahaatv/backend/internal/infrastructure/system"
	"github.com/mahaatv/backend/internal/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// probeCacheExpiry bounds how often health checks read runtime memory stats
const probeCacheExpiry = 5 * time.Second

func provideChannelRepository(db *memdb.MemDB) (*memory.ChannelRepository, error) {
	return memory.NewChannelRepository(db, catalog.Channels())
}

func provideLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Schedule.Location()
}

func provideScheduleRepository(db *memdb.MemDB, loc *time.Location) (*memory.ScheduleRepository, error) {
	return memory.NewScheduleRepository(db, catalog.Schedules, loc, time.Now())
}

func provideChannelService(repo domain.ChannelRepository) *application.ChannelService {
	return application.NewChannelService(repo, catalog.ChannelImages)
}

func provideSessionService(repo domain.SessionRepository, cfg *config.Config) *application.SessionService {
	return application.NewSessionService(repo, cfg.Session.IdleDuration())
}

func providePlaylistService(channels *application.ChannelService, sessions *application.SessionService) *application.PlaylistService {
	return application.NewPlaylistService(channels, sessions, catalog.CategoryColors)
}

func provideScheduleService(
	channels *application.ChannelService,
	schedules domain.ScheduleRepository,
	sessions *application.SessionService,
	loc *time.Location,
) *application.ScheduleService {
	return application.NewScheduleService(channels, schedules, sessions, catalog.GenreColors, loc)
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideRecorder(cfg *config.Config, reg prometheus.Registerer, sessions *application.SessionService) metrics.Recorder {
	return metrics.NewProvider(cfg.Metrics.Enabled, reg, sessions.Count)
}

func provideResponseCache(cfg *config.Config, rec metrics.Recorder) cache.ResponseCache {
	return cache.NewInstrumentedResponseCache(cfg.Cache, rec)
}

func provideScheduler(
	cfg *config.Config,
	loc *time.Location,
	schedules *memory.ScheduleRepository,
	sessions *application.SessionService,
	rec metrics.Recorder,
) (*scheduler.Scheduler, error) {
	return scheduler.New(cfg, loc, schedules, sessions, rec)
}

func provideProbe() *system.Probe {
	return system.NewProbe(time.Now(), probeCacheExpiry)
}

//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/mahaatv/backend/internal"
	"github.com/mahaatv/backend/internal/application"
	"github.com/mahaatv/backend/internal/domain"
	"github.com/mahaatv/backend/internal/infrastructure/repository/memory"
	"github.com/mahaatv/backend/internal/interfaces/http"
	"github.com/mahaatv/backend/internal/interfaces/http/handlers"
	"github.com/mahaatv/backend/internal/interfaces/http/middleware"
	"github.com/mahaatv/backend/internal/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
)

func InitApp(cfg *config.Config) (*internal.App, error) {

	wire.Build(
		memory.NewDatabase,
		provideChannelRepository,
		memory.NewSessionRepository,
		provideLocation,
		provideScheduleRepository,
		wire.Bind(new(domain.ChannelRepository), new(*memory.ChannelRepository)),
		wire.Bind(new(domain.SessionRepository), new(*memory.SessionRepository)),
		wire.Bind(new(domain.ScheduleRepository), new(*memory.ScheduleRepository)),

		provideChannelService,
		provideSessionService,
		providePlaylistService,
		provideScheduleService,
		application.NewThemeService,

		provideRegistry,
		wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		provideRecorder,
		provideResponseCache,
		provideScheduler,
		provideProbe,

		handlers.NewChannelHandler,
		handlers.NewPlaylistHandler,
		handlers.NewScheduleHandler,
		handlers.NewThemeHandler,
		handlers.NewSessionHandler,
		handlers.NewSystemHandler,
		wire.Struct(new(http.Handlers), "*"),
		middleware.NewSessionMiddleware,
		http.NewRouter,
		internal.NewApp,
	)

	return nil, nil
}

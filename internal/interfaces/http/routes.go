package http

import (
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mahaatv/backend/internal/infrastructure/metrics"
	"github.com/mahaatv/backend/internal/interfaces/http/handlers"
	"github.com/mahaatv/backend/internal/interfaces/http/middleware"
	"github.com/mahaatv/backend/internal/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers the router mounts
type Handlers struct {
	Channel  *handlers.ChannelHandler
	Playlist *handlers.PlaylistHandler
	Schedule *handlers.ScheduleHandler
	Theme    *handlers.ThemeHandler
	Session  *handlers.SessionHandler
	System   *handlers.SystemHandler
}

// Router holds all handlers and middleware
type Router struct {
	app               *fiber.App
	handlers          Handlers
	sessionMiddleware *middleware.SessionMiddleware
	recorder          metrics.Recorder
	gatherer          prometheus.Gatherer
	metricsConfig     config.MetricsConfig
}

// NewRouter creates a new router
func NewRouter(
	h Handlers,
	sessionMiddleware *middleware.SessionMiddleware,
	recorder metrics.Recorder,
	gatherer prometheus.Gatherer,
	cfg *config.Config,
) *Router {
	isProd := os.Getenv("ENV") == "production" || os.Getenv("ENVIRONMENT") == "production"

	app := fiber.New(fiber.Config{
		ErrorHandler:    customErrorHandler,
		ReadTimeout:     time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:    time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:     time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		JSONEncoder:     json.Marshal,
		JSONDecoder:     json.Unmarshal,
		ServerHeader:    "MahaaTV",
		AppName:         "MahaaTV API",
	})

	// Global middleware - order matters!
	app.Use(recover.New())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	if !isProd {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${method} ${path} - ${latency}\n",
		}))
	} else {
		app.Use(logger.New(logger.Config{
			Format:     "${status} ${method} ${path} ${latency}\n",
			TimeFormat: "15:04:05",
			Output:     os.Stdout,
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept," + middleware.SessionHeader,
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	app.Use(middleware.Metrics(recorder))

	return &Router{
		app:               app,
		handlers:          h,
		sessionMiddleware: sessionMiddleware,
		recorder:          recorder,
		gatherer:          gatherer,
		metricsConfig:     cfg.Metrics,
	}
}

// App exposes the fiber application
func (r *Router) App() *fiber.App {
	return r.app
}

// SetupRoutes configures all routes
func (r *Router) SetupRoutes() {
	if r.metricsConfig.Enabled && r.gatherer != nil {
		r.app.Get(r.metricsConfig.Path, adaptor.HTTPHandler(
			promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}),
		))
	}

	api := r.app.Group("/api/v1")

	api.Get("/health", r.handlers.System.Health)

	// Sessions
	api.Post("/sessions", r.handlers.Session.Create)

	// Catalog (public)
	channels := api.Group("/channels")
	channels.Get("/", r.handlers.Channel.List)
	channels.Get("/:id", r.handlers.Channel.Get)
	channels.Post("/:id/select", r.handlers.Channel.Select)
	channels.Get("/:id/playback", r.handlers.Channel.Playback)
	channels.Post("/:id/playlist/:videoId/select", r.handlers.Playlist.SelectVideo)

	api.Get("/schedule", r.handlers.Schedule.Get)
	api.Get("/theme/palettes", r.handlers.Theme.Palettes)

	// Session-scoped routes
	requireSession := r.sessionMiddleware.Require()

	api.Get("/sessions/me", requireSession, r.handlers.Session.Me)
	api.Delete("/sessions/me", requireSession, r.handlers.Session.Delete)
	api.Get("/sessions/me/schedule", requireSession, r.handlers.Schedule.SessionGet)
	api.Put("/sessions/me/schedule", requireSession, r.handlers.Schedule.SessionSelect)

	channels.Get("/:id/playlist", requireSession, r.handlers.Playlist.Get)
	channels.Post("/:id/playlist/shuffle", requireSession, r.handlers.Playlist.Shuffle)

	api.Get("/theme", requireSession, r.handlers.Theme.Get)
	api.Post("/theme/toggle", requireSession, r.handlers.Theme.Toggle)
}

// Start starts the HTTP server
func (r *Router) Start(addr string) error {
	return r.app.Listen(addr)
}

// Shutdown gracefully shuts down the server
func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is the instrumentation surface used by the HTTP layer and jobs
type Recorder interface {
	IncRequestsTotal(route string, status int)
	ObserveRequestDuration(route string, duration time.Duration)
	IncSelections(target string)
	IncThemeToggles(darkMode bool)
	IncShuffleToggles(shuffled bool)
	IncCacheHits()
	IncCacheMisses()
	IncSessionsSwept(count int)
}

// SessionCounter reports the number of live sessions
type SessionCounter func() (int, error)

// Provider implements Recorder with prometheus collectors
type Provider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	selections      *prometheus.CounterVec
	themeToggles    *prometheus.CounterVec
	shuffleToggles  *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	sessionsSwept   prometheus.Counter
}

// NewProvider registers the collectors on reg. A disabled provider records nothing.
func NewProvider(enabled bool, reg prometheus.Registerer, sessions SessionCounter) Recorder {
	if !enabled {
		return &noopRecorder{}
	}

	factory := promauto.With(reg)
	p := &Provider{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mahaatv_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mahaatv_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),

		selections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mahaatv_selections_total",
			Help: "Navigation requests issued by target",
		}, []string{"target"}),

		themeToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mahaatv_theme_toggles_total",
			Help: "Theme toggles by resulting mode",
		}, []string{"mode"}),

		shuffleToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mahaatv_shuffle_toggles_total",
			Help: "Playlist shuffle toggles by resulting state",
		}, []string{"state"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "mahaatv_cache_hits_total",
			Help: "Total number of response cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "mahaatv_cache_misses_total",
			Help: "Total number of response cache misses",
		}),

		sessionsSwept: factory.NewCounter(prometheus.CounterOpts{
			Name: "mahaatv_sessions_swept_total",
			Help: "Idle sessions removed by the sweeper",
		}),
	}

	if sessions != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "mahaatv_sessions",
			Help: "Current number of viewer sessions",
		}, func() float64 {
			n, err := sessions()
			if err != nil {
				return 0
			}
			return float64(n)
		})
	}

	return p
}

func (p *Provider) IncRequestsTotal(route string, status int) {
	p.requestsTotal.WithLabelValues(route, statusBucket(status)).Inc()
}

func (p *Provider) ObserveRequestDuration(route string, duration time.Duration) {
	p.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func (p *Provider) IncSelections(target string) {
	p.selections.WithLabelValues(target).Inc()
}

func (p *Provider) IncThemeToggles(darkMode bool) {
	mode := "light"
	if darkMode {
		mode = "dark"
	}
	p.themeToggles.WithLabelValues(mode).Inc()
}

func (p *Provider) IncShuffleToggles(shuffled bool) {
	state := "off"
	if shuffled {
		state = "on"
	}
	p.shuffleToggles.WithLabelValues(state).Inc()
}

func (p *Provider) IncCacheHits() {
	p.cacheHits.Inc()
}

func (p *Provider) IncCacheMisses() {
	p.cacheMisses.Inc()
}

func (p *Provider) IncSessionsSwept(count int) {
	p.sessionsSwept.Add(float64(count))
}

func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// noopRecorder is used when metrics are disabled.
type noopRecorder struct{}

func (n *noopRecorder) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopRecorder) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopRecorder) IncSelections(_ string)                           {}
func (n *noopRecorder) IncThemeToggles(_ bool)                           {}
func (n *noopRecorder) IncShuffleToggles(_ bool)                         {}
func (n *noopRecorder) IncCacheHits()                                    {}
func (n *noopRecorder) IncCacheMisses()                                  {}
func (n *noopRecorder) IncSessionsSwept(_ int)                           {}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_DisabledIsNoop(t *testing.T) {
	m := NewProvider(false, prometheus.NewRegistry(), nil)
	_, ok := m.(*noopRecorder)
	assert.True(t, ok)

	m.IncRequestsTotal("/api/v1/channels", 200)
	m.ObserveRequestDuration("/api/v1/channels", time.Millisecond)
	m.IncSelections("DirectPlayer")
	m.IncThemeToggles(true)
	m.IncShuffleToggles(true)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncSessionsSwept(3)
}

func TestProvider_CountsByLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewProvider(true, reg, nil).(*Provider)

	p.IncSelections("PlaylistBrowser")
	p.IncSelections("PlaylistBrowser")
	p.IncSelections("DirectPlayer")
	p.IncThemeToggles(true)
	p.IncShuffleToggles(false)
	p.IncRequestsTotal("/api/v1/channels/:id", 404)
	p.IncSessionsSwept(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.selections.WithLabelValues("PlaylistBrowser")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.selections.WithLabelValues("DirectPlayer")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.themeToggles.WithLabelValues("dark")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.shuffleToggles.WithLabelValues("off")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.requestsTotal.WithLabelValues("/api/v1/channels/:id", "4xx")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.sessionsSwept))
}

func TestProvider_SessionGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewProvider(true, reg, func() (int, error) { return 7, nil })

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() == "mahaatv_sessions" {
			found = true
			assert.Equal(t, 7.0, mf.GetMetric()[0].GetGauge().GetValue())
		}
	}
	assert.True(t, found)
}

func TestStatusBucket(t *testing.T) {
	assert.Equal(t, "1xx", statusBucket(101))
	assert.Equal(t, "2xx", statusBucket(200))
	assert.Equal(t, "3xx", statusBucket(304))
	assert.Equal(t, "4xx", statusBucket(409))
	assert.Equal(t, "5xx", statusBucket(503))
}

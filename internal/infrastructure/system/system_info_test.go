package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_ReportsUptime(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	p := NewProbe(started, time.Second)
	p.now = func() time.Time { return started.Add(90 * time.Second) }

	info := p.Snapshot()
	assert.Equal(t, int64(90), info.UptimeSeconds)
	assert.Equal(t, started, info.StartedAt)
	assert.NotEmpty(t, info.GoVersion)
	assert.Positive(t, info.Goroutines)
}

func TestSnapshot_CachedWithinExpiry(t *testing.T) {
	started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	clock := started.Add(10 * time.Second)
	p := NewProbe(started, 5*time.Second)
	p.now = func() time.Time { return clock }

	first := p.Snapshot()

	clock = clock.Add(2 * time.Second)
	assert.Equal(t, first.UptimeSeconds, p.Snapshot().UptimeSeconds)

	clock = clock.Add(5 * time.Second)
	assert.Equal(t, int64(17), p.Snapshot().UptimeSeconds)
}

package system

import (
	"runtime"
	"sync"
	"time"
)

// Info is a snapshot of process health
type Info struct {
	StartedAt     time.Time `json:"started_at"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	GoVersion     string    `json:"go_version"`
	CPUThreads    int       `json:"cpu_threads"`
	Goroutines    int       `json:"goroutines"`
	HeapAlloc     uint64    `json:"heap_alloc_bytes"`
	HeapObjects   uint64    `json:"heap_objects"`
	NumGC         uint32    `json:"num_gc"`
}

// Probe reads process statistics. ReadMemStats stops the world, so
// snapshots are reused for cacheExpiry.
type Probe struct {
	startedAt   time.Time
	cacheExpiry time.Duration
	now         func() time.Time

	mu         sync.RWMutex
	data       *Info
	lastUpdate time.Time
}

// NewProbe creates a probe for a process started at startedAt
func NewProbe(startedAt time.Time, cacheExpiry time.Duration) *Probe {
	return &Probe{
		startedAt:   startedAt,
		cacheExpiry: cacheExpiry,
		now:         time.Now,
	}
}

// Snapshot returns current process information with caching
func (p *Probe) Snapshot() Info {
	p.mu.RLock()
	if p.data != nil && p.now().Sub(p.lastUpdate) < p.cacheExpiry {
		cached := *p.data
		p.mu.RUnlock()
		return cached
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another goroutine may have refreshed it while we waited
	now := p.now()
	if p.data != nil && now.Sub(p.lastUpdate) < p.cacheExpiry {
		return *p.data
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	info := &Info{
		StartedAt:     p.startedAt,
		UptimeSeconds: int64(now.Sub(p.startedAt).Seconds()),
		GoVersion:     runtime.Version(),
		CPUThreads:    runtime.NumCPU(),
		Goroutines:    runtime.NumGoroutine(),
		HeapAlloc:     mem.HeapAlloc,
		HeapObjects:   mem.HeapObjects,
		NumGC:         mem.NumGC,
	}

	p.data = info
	p.lastUpdate = now
	return *info
}

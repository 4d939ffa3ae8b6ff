package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mahaatv/backend/internal/domain"
)

var testPlaylist = []domain.VideoEntry{
	{ID: "v1", Title: "Opening", SourceID: "src-1", Category: "Conference", ScheduledTime: "06:00"},
	{ID: "v2", Title: "Keynote", SourceID: "src-2", Category: "Political", ScheduledTime: "09:00"},
	{ID: "v3", Title: "Gala", SourceID: "src-3", Category: "Awards", ScheduledTime: "14:00"},
	{ID: "v4", Title: "Closing", SourceID: "src-4", Category: "Unknown", ScheduledTime: "19:00"},
}

func testChannels() []domain.ChannelEntry {
	return []domain.ChannelEntry{
		{
			ID:     "mahaa-news",
			Name:   "Mahaa News",
			Source: domain.DirectSource("https://example.test/news/index.m3u8"),
		},
		{
			ID:     "mahaa-usa",
			Name:   "Mahaa USA",
			Source: domain.HostedSource("src-2", testPlaylist),
		},
	}
}

type fakeChannelRepo struct {
	channels []domain.ChannelEntry
}

func (r *fakeChannelRepo) GetAll() ([]domain.ChannelEntry, error) {
	out := make([]domain.ChannelEntry, len(r.channels))
	copy(out, r.channels)
	return out, nil
}

func (r *fakeChannelRepo) GetByID(id string) (domain.ChannelEntry, error) {
	for _, c := range r.channels {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.ChannelEntry{}, fmt.Errorf("channel %s: %w", id, domain.ErrRecordNotFound)
}

func (r *fakeChannelRepo) GetByIndex(index int) (domain.ChannelEntry, error) {
	if index < 0 || index >= len(r.channels) {
		return domain.ChannelEntry{}, domain.ErrRecordNotFound
	}
	return r.channels[index], nil
}

func (r *fakeChannelRepo) Count() int { return len(r.channels) }

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*domain.Session)}
}

func (r *fakeSessionRepo) Create(s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s.Clone()
	return nil
}

func (r *fakeSessionRepo) GetByID(id uuid.UUID) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return s.Clone(), nil
}

func (r *fakeSessionRepo) Update(s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; !ok {
		return domain.ErrRecordNotFound
	}
	r.sessions[s.ID] = s.Clone()
	return nil
}

func (r *fakeSessionRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) DeleteIdleSince(cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.LastSeenAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *fakeSessionRepo) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions), nil
}

type fakeScheduleRepo struct {
	days [][]domain.ScheduleDay
}

func (r *fakeScheduleRepo) GetByChannelIndex(index int) ([]domain.ScheduleDay, error) {
	if index < 0 || index >= len(r.days) {
		return nil, domain.ErrRecordNotFound
	}
	return r.days[index], nil
}

// reverseShuffle is a deterministic ShuffleFunc that reverses the input
func reverseShuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

// countingShuffle counts how often it was asked for a permutation
type countingShuffle struct {
	calls int
}

func (c *countingShuffle) shuffle(n int, swap func(i, j int)) {
	c.calls++
	reverseShuffle(n, swap)
}

type testServices struct {
	channels  *ChannelService
	sessions  *SessionService
	playlists *PlaylistService
	themes    *ThemeService
}

func newTestServices() *testServices {
	channels := NewChannelService(&fakeChannelRepo{channels: testChannels()}, map[string]string{
		"mahaa-news": "https://img.example.test/news.png",
	})
	sessions := NewSessionService(newFakeSessionRepo(), time.Hour)
	return &testServices{
		channels:  channels,
		sessions:  sessions,
		playlists: NewPlaylistService(channels, sessions, map[string]string{"Conference": "#2563eb"}),
		themes:    NewThemeService(sessions),
	}
}

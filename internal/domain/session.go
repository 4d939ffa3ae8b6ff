package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistState is a viewer's view over one hosted playlist
type PlaylistState struct {
	Shuffled bool     `json:"shuffled"`
	Order    []string `json:"order"`
}

// Session is the explicit state context of one viewer. The toggle and
// select methods are its only mutators.
type Session struct {
	ID              uuid.UUID                 `json:"id"`
	DarkMode        bool                      `json:"dark_mode"`
	Playlists       map[string]*PlaylistState `json:"playlists"`
	ScheduleChannel int                       `json:"schedule_channel"`
	ScheduleDay     int                       `json:"schedule_day"`
	CreatedAt       time.Time                 `json:"created_at"`
	LastSeenAt      time.Time                 `json:"last_seen_at"`
}

// NewSession creates a session in light mode with nothing selected
func NewSession(now time.Time) *Session {
	return &Session{
		ID:         uuid.New(),
		Playlists:  make(map[string]*PlaylistState),
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// ToggleTheme flips the dark-mode flag and returns the new value
func (s *Session) ToggleTheme() bool {
	s.DarkMode = !s.DarkMode
	return s.DarkMode
}

// Playlist returns the state for a channel, nil when never toggled
func (s *Session) Playlist(channelID string) *PlaylistState {
	return s.Playlists[channelID]
}

// SetPlaylist stores the playlist state for a channel
func (s *Session) SetPlaylist(channelID string, state *PlaylistState) {
	if s.Playlists == nil {
		s.Playlists = make(map[string]*PlaylistState)
	}
	s.Playlists[channelID] = state
}

// Clone returns a deep copy so stored sessions are never shared
func (s *Session) Clone() *Session {
	out := *s
	out.Playlists = make(map[string]*PlaylistState, len(s.Playlists))
	for id, st := range s.Playlists {
		order := make([]string, len(st.Order))
		copy(order, st.Order)
		out.Playlists[id] = &PlaylistState{Shuffled: st.Shuffled, Order: order}
	}
	return &out
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(session *Session) error
	GetByID(id uuid.UUID) (*Session, error)
	Update(session *Session) error
	Delete(id uuid.UUID) error
	DeleteIdleSince(cutoff time.Time) (int, error)
	Count() (int, error)
}

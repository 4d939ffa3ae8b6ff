package domain

import (
	"errors"
	"fmt"
)

// SourceKind identifies how a channel delivers its content
type SourceKind string

const (
	SourceDirect SourceKind = "direct"
	SourceHosted SourceKind = "hosted"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrEmptyStreamURL = errors.New("direct channel has no stream url")
	ErrEmptyPlaylist  = errors.New("hosted channel has an empty playlist")
	ErrUnknownSource  = errors.New("channel has no content source")
)

// Source is either a live stream locator or a hosted playlist, never both.
// The zero value is invalid.
type Source struct {
	kind           SourceKind
	streamURL      string
	defaultVideoID string
	playlist       []VideoEntry
}

// DirectSource creates a source backed by a live stream locator
func DirectSource(streamURL string) Source {
	return Source{kind: SourceDirect, streamURL: streamURL}
}

// HostedSource creates a source backed by provider-hosted videos
func HostedSource(defaultVideoID string, playlist []VideoEntry) Source {
	entries := make([]VideoEntry, len(playlist))
	copy(entries, playlist)
	return Source{kind: SourceHosted, defaultVideoID: defaultVideoID, playlist: entries}
}

// Kind returns the source discriminator
func (s Source) Kind() SourceKind {
	return s.kind
}

// StreamURL returns the live stream locator of a direct source
func (s Source) StreamURL() (string, bool) {
	if s.kind != SourceDirect {
		return "", false
	}
	return s.streamURL, true
}

// DefaultVideoID returns the hosted video played when no track is chosen
func (s Source) DefaultVideoID() string {
	return s.defaultVideoID
}

// Playlist returns a copy of the hosted playlist in canonical order
func (s Source) Playlist() ([]VideoEntry, bool) {
	if s.kind != SourceHosted {
		return nil, false
	}
	entries := make([]VideoEntry, len(s.playlist))
	copy(entries, s.playlist)
	return entries, true
}

// Validate checks that the variant carries the data its kind requires
func (s Source) Validate() error {
	switch s.kind {
	case SourceDirect:
		if s.streamURL == "" {
			return ErrEmptyStreamURL
		}
	case SourceHosted:
		if len(s.playlist) == 0 {
			return ErrEmptyPlaylist
		}
		seen := make(map[string]struct{}, len(s.playlist))
		for _, v := range s.playlist {
			if v.ID == "" {
				return fmt.Errorf("playlist entry %q has no id", v.Title)
			}
			if _, dup := seen[v.ID]; dup {
				return fmt.Errorf("duplicate playlist entry id %q", v.ID)
			}
			seen[v.ID] = struct{}{}
		}
	default:
		return ErrUnknownSource
	}
	return nil
}

// GradientPair is a start→end color pair used for channel cards
type GradientPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ChannelEntry is one immutable catalog item
type ChannelEntry struct {
	ID          string
	Name        string
	Description string
	ColorToken  string
	Gradient    GradientPair
	Icon        string
	Source      Source
}

// IsHostedPlaylist is the sole discriminator used for navigation routing
func (c ChannelEntry) IsHostedPlaylist() bool {
	return c.Source.kind == SourceHosted
}

// WithVideo returns a copy of the channel whose playback identifier is
// overridden by sourceID. Every other field is passed through.
func (c ChannelEntry) WithVideo(sourceID string) ChannelEntry {
	out := c
	switch c.Source.kind {
	case SourceHosted:
		out.Source = HostedSource(sourceID, c.Source.playlist)
	default:
		// a direct channel starts carrying a hosted identifier alongside its stream
		out.Source.defaultVideoID = sourceID
	}
	return out
}

// Validate checks the channel is well formed
func (c ChannelEntry) Validate() error {
	if c.ID == "" {
		return errors.New("channel id is empty")
	}
	if err := c.Source.Validate(); err != nil {
		return fmt.Errorf("channel %s: %w", c.ID, err)
	}
	return nil
}

// ChannelRepository defines read access to the compiled-in catalog
type ChannelRepository interface {
	GetAll() ([]ChannelEntry, error)
	GetByID(id string) (ChannelEntry, error)
	GetByIndex(index int) (ChannelEntry, error)
	Count() int
}

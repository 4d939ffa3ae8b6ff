package application

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/mahaatv/backend/internal/domain"
	"github.com/mahaatv/backend/internal/pkg/logger"
)

var (
	ErrNotHostedPlaylist = errors.New("channel is not a hosted playlist")
	ErrVideoNotFound     = errors.New("video not found")
)

// DefaultBadgeColor is used for categories and genres missing from a color table
const DefaultBadgeColor = "#6b7280"

// ShuffleFunc permutes n elements through swap, like rand.Shuffle
type ShuffleFunc func(n int, swap func(i, j int))

// BuildPlaylistView returns the order to display. The input slice is never
// modified: unshuffled views are a copy in input order, shuffled views a
// uniform permutation drawn with shuffle.
func BuildPlaylistView(entries []domain.VideoEntry, shuffled bool, shuffle ShuffleFunc) []domain.VideoEntry {
	view := make([]domain.VideoEntry, len(entries))
	copy(view, entries)
	if !shuffled {
		return view
	}
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(view), func(i, j int) {
		view[i], view[j] = view[j], view[i]
	})
	return view
}

// PickCategoryColor returns the table color for a category or the fallback
func PickCategoryColor(category string, table map[string]string, fallback string) string {
	if color, ok := table[category]; ok {
		return color
	}
	return fallback
}

// SelectTrack routes a chosen video to the player, overriding the channel's
// playback identifier with the video's source id
func SelectTrack(channel domain.ChannelEntry, video domain.VideoEntry) domain.NavigationRequest {
	return domain.NavigationRequest{
		Target:  domain.TargetDirectPlayer,
		Channel: channel.WithVideo(video.SourceID),
	}
}

// PlaylistPage is what the playlist browser renders for one viewer
type PlaylistPage struct {
	Channel  domain.ChannelEntry
	Shuffled bool
	Videos   []domain.VideoEntry
}

// PlaylistService handles playlist browsing for hosted channels
type PlaylistService struct {
	channels       *ChannelService
	sessions       *SessionService
	shuffle        ShuffleFunc
	categoryColors map[string]string
}

// NewPlaylistService creates a new playlist service
func NewPlaylistService(channels *ChannelService, sessions *SessionService, categoryColors map[string]string) *PlaylistService {
	return &PlaylistService{
		channels:       channels,
		sessions:       sessions,
		shuffle:        rand.Shuffle,
		categoryColors: categoryColors,
	}
}

// WithShuffle replaces the permutation source
func (s *PlaylistService) WithShuffle(shuffle ShuffleFunc) *PlaylistService {
	s.shuffle = shuffle
	return s
}

// CategoryColor resolves a video category to its badge color
func (s *PlaylistService) CategoryColor(category string) string {
	return PickCategoryColor(category, s.categoryColors, DefaultBadgeColor)
}

func (s *PlaylistService) hostedPlaylist(channelID string) (domain.ChannelEntry, []domain.VideoEntry, error) {
	channel, err := s.channels.GetChannel(channelID)
	if err != nil {
		return domain.ChannelEntry{}, nil, err
	}
	entries, ok := channel.Source.Playlist()
	if !ok {
		return domain.ChannelEntry{}, nil, fmt.Errorf("%w: %s", ErrNotHostedPlaylist, channelID)
	}
	return channel, entries, nil
}

// Playlist returns the viewer's current view. Reading never reshuffles.
func (s *PlaylistService) Playlist(sessionID uuid.UUID, channelID string) (*PlaylistPage, error) {
	channel, entries, err := s.hostedPlaylist(channelID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	page := &PlaylistPage{Channel: channel, Videos: entries}
	if state := session.Playlist(channelID); state != nil && state.Shuffled {
		page.Shuffled = true
		page.Videos = restoreOrder(entries, state.Order)
	}
	return page, nil
}

// ToggleShuffle flips the viewer's shuffle flag. Turning it on draws a new
// permutation exactly once; turning it off restores the canonical order.
func (s *PlaylistService) ToggleShuffle(sessionID uuid.UUID, channelID string) (*PlaylistPage, error) {
	channel, entries, err := s.hostedPlaylist(channelID)
	if err != nil {
		return nil, err
	}

	var view []domain.VideoEntry
	session, err := s.sessions.Mutate(sessionID, func(sess *domain.Session) error {
		shuffled := true
		if state := sess.Playlist(channelID); state != nil {
			shuffled = !state.Shuffled
		}
		view = BuildPlaylistView(entries, shuffled, s.shuffle)

		state := &domain.PlaylistState{Shuffled: shuffled}
		if shuffled {
			state.Order = videoIDs(view)
		}
		sess.SetPlaylist(channelID, state)
		return nil
	})
	if err != nil {
		return nil, err
	}

	shuffled := session.Playlist(channelID).Shuffled
	sessionLog := logger.Session(sessionID)
	sessionLog.Debug().
		Str("channel_id", channelID).
		Bool("shuffled", shuffled).
		Msg("Playlist shuffle toggled")

	return &PlaylistPage{Channel: channel, Shuffled: shuffled, Videos: view}, nil
}

// SelectVideo resolves a video of a hosted channel into a player request
func (s *PlaylistService) SelectVideo(channelID, videoID string) (domain.NavigationRequest, error) {
	channel, entries, err := s.hostedPlaylist(channelID)
	if err != nil {
		return domain.NavigationRequest{}, err
	}
	for _, video := range entries {
		if video.ID == videoID {
			return SelectTrack(channel, video), nil
		}
	}
	return domain.NavigationRequest{}, fmt.Errorf("%w: %s/%s", ErrVideoNotFound, channelID, videoID)
}

func videoIDs(entries []domain.VideoEntry) []string {
	ids := make([]string, len(entries))
	for i, v := range entries {
		ids[i] = v.ID
	}
	return ids
}

// restoreOrder rebuilds a stored permutation. A stale order that no longer
// matches the playlist falls back to canonical order.
func restoreOrder(entries []domain.VideoEntry, order []string) []domain.VideoEntry {
	if len(order) != len(entries) {
		return entries
	}
	byID := make(map[string]domain.VideoEntry, len(entries))
	for _, v := range entries {
		byID[v.ID] = v
	}
	view := make([]domain.VideoEntry, 0, len(order))
	for _, id := range order {
		v, ok := byID[id]
		if !ok {
			return entries
		}
		view = append(view, v)
		delete(byID, id)
	}
	return view
}

package application

import (
	"errors"
	"fmt"

	"github.com/mahaatv/backend/internal/domain"
	"github.com/mahaatv/backend/internal/pkg/logger"
)

var ErrChannelNotFound = errors.New("channel not found")

// ChannelService handles catalog lookups and channel routing
type ChannelService struct {
	repo   domain.ChannelRepository
	images map[string]string
}

// NewChannelService creates a new channel service
func NewChannelService(repo domain.ChannelRepository, images map[string]string) *ChannelService {
	return &ChannelService{
		repo:   repo,
		images: images,
	}
}

// SelectTarget decides where a channel opens. Hosted playlists go to the
// playlist browser, everything else straight to the player.
func SelectTarget(channel domain.ChannelEntry) domain.NavigationRequest {
	target := domain.TargetDirectPlayer
	if channel.IsHostedPlaylist() {
		target = domain.TargetPlaylistBrowser
	}
	return domain.NavigationRequest{Target: target, Channel: channel}
}

// ListChannels returns the catalog in display order
func (s *ChannelService) ListChannels() ([]domain.ChannelEntry, error) {
	return s.repo.GetAll()
}

// GetChannel retrieves a channel by id
func (s *ChannelService) GetChannel(id string) (domain.ChannelEntry, error) {
	channel, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.ChannelEntry{}, fmt.Errorf("%w: %s", ErrChannelNotFound, id)
		}
		return domain.ChannelEntry{}, fmt.Errorf("get channel %s: %w", id, err)
	}
	return channel, nil
}

// ChannelAt retrieves the channel at a catalog position
func (s *ChannelService) ChannelAt(index int) (domain.ChannelEntry, error) {
	if index < 0 || index >= s.repo.Count() {
		return domain.ChannelEntry{}, fmt.Errorf("channel index %d: %w", index, ErrIndexOutOfRange)
	}
	return s.repo.GetByIndex(index)
}

// SelectChannel resolves a channel id into a navigation request. Unknown
// ids fail with ErrChannelNotFound and must not navigate.
func (s *ChannelService) SelectChannel(id string) (domain.NavigationRequest, error) {
	channel, err := s.GetChannel(id)
	if err != nil {
		return domain.NavigationRequest{}, err
	}

	req := SelectTarget(channel)
	logger.Debug().
		Str("channel_id", channel.ID).
		Str("target", string(req.Target)).
		Msg("Channel selected")
	return req, nil
}

// Playback resolves the playback descriptor of a channel
func (s *ChannelService) Playback(id string) (domain.Playback, error) {
	channel, err := s.GetChannel(id)
	if err != nil {
		return domain.Playback{}, err
	}
	return domain.PlaybackFor(channel), nil
}

// ChannelImage returns the artwork url of a channel, empty when none is known
func (s *ChannelService) ChannelImage(id string) string {
	return s.images[id]
}

// Count returns the number of catalog channels
func (s *ChannelService) Count() int {
	return s.repo.Count()
}

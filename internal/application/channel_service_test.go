package application

import (
	"testing"

	"github.com/mahaatv/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTarget_HostedOpensPlaylistBrowser(t *testing.T) {
	usa := testChannels()[1]

	req := SelectTarget(usa)
	assert.Equal(t, domain.TargetPlaylistBrowser, req.Target)
	assert.Equal(t, usa.ID, req.Channel.ID)
}

func TestSelectTarget_DirectOpensPlayer(t *testing.T) {
	news := testChannels()[0]

	req := SelectTarget(news)
	assert.Equal(t, domain.TargetDirectPlayer, req.Target)
	assert.Equal(t, news, req.Channel)
}

func TestSelectTarget_DecidedBySourceKind(t *testing.T) {
	c := testChannels()[1]
	_, hasURL := c.Source.StreamURL()
	assert.False(t, hasURL)
	assert.Equal(t, domain.TargetPlaylistBrowser, SelectTarget(c).Target)
}

func TestChannelService_SelectChannel(t *testing.T) {
	s := newTestServices()

	req, err := s.channels.SelectChannel("mahaa-usa")
	require.NoError(t, err)
	assert.Equal(t, domain.TargetPlaylistBrowser, req.Target)
	assert.Equal(t, domain.ScreenPlaylist, req.Target.Screen())

	req, err = s.channels.SelectChannel("mahaa-news")
	require.NoError(t, err)
	assert.Equal(t, domain.TargetDirectPlayer, req.Target)
	assert.Equal(t, domain.ScreenPlayer, req.Target.Screen())
}

func TestChannelService_SelectUnknownChannel(t *testing.T) {
	s := newTestServices()

	req, err := s.channels.SelectChannel("nope")
	assert.ErrorIs(t, err, ErrChannelNotFound)
	assert.Empty(t, req.Target)
}

func TestChannelService_ListKeepsOrder(t *testing.T) {
	s := newTestServices()

	channels, err := s.channels.ListChannels()
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "mahaa-news", channels[0].ID)
	assert.Equal(t, "mahaa-usa", channels[1].ID)
}

func TestChannelService_ChannelAt(t *testing.T) {
	s := newTestServices()

	c, err := s.channels.ChannelAt(1)
	require.NoError(t, err)
	assert.Equal(t, "mahaa-usa", c.ID)

	_, err = s.channels.ChannelAt(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = s.channels.ChannelAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestChannelService_Playback(t *testing.T) {
	s := newTestServices()

	p, err := s.channels.Playback("mahaa-news")
	require.NoError(t, err)
	assert.Equal(t, domain.PlaybackHLS, p.Kind)
	assert.Equal(t, "https://example.test/news/index.m3u8", p.Locator)

	p, err = s.channels.Playback("mahaa-usa")
	require.NoError(t, err)
	assert.Equal(t, domain.PlaybackYouTube, p.Kind)
	assert.Equal(t, "src-2", p.Locator)

	_, err = s.channels.Playback("nope")
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestChannelService_ChannelImage(t *testing.T) {
	s := newTestServices()

	assert.Equal(t, "https://img.example.test/news.png", s.channels.ChannelImage("mahaa-news"))
	assert.Empty(t, s.channels.ChannelImage("mahaa-usa"))
}

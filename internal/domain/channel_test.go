package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleVideos = []VideoEntry{
	{ID: "a", Title: "A", SourceID: "src-a"},
	{ID: "b", Title: "B", SourceID: "src-b"},
}

func TestSource_DirectVariant(t *testing.T) {
	s := DirectSource("https://example.test/live.m3u8")

	assert.Equal(t, SourceDirect, s.Kind())
	url, ok := s.StreamURL()
	assert.True(t, ok)
	assert.Equal(t, "https://example.test/live.m3u8", url)

	_, ok = s.Playlist()
	assert.False(t, ok)
	assert.NoError(t, s.Validate())
}

func TestSource_HostedVariant(t *testing.T) {
	s := HostedSource("src-a", sampleVideos)

	assert.Equal(t, SourceHosted, s.Kind())
	_, ok := s.StreamURL()
	assert.False(t, ok)
	assert.Equal(t, "src-a", s.DefaultVideoID())

	entries, ok := s.Playlist()
	require.True(t, ok)
	assert.Equal(t, sampleVideos, entries)
	assert.NoError(t, s.Validate())
}

func TestSource_PlaylistIsACopy(t *testing.T) {
	input := append([]VideoEntry(nil), sampleVideos...)
	s := HostedSource("src-a", input)

	input[0].Title = "changed"
	entries, _ := s.Playlist()
	assert.Equal(t, "A", entries[0].Title)

	entries[1].Title = "changed"
	again, _ := s.Playlist()
	assert.Equal(t, "B", again[1].Title)
}

func TestSource_Validate(t *testing.T) {
	assert.ErrorIs(t, DirectSource("").Validate(), ErrEmptyStreamURL)
	assert.ErrorIs(t, HostedSource("x", nil).Validate(), ErrEmptyPlaylist)
	assert.ErrorIs(t, Source{}.Validate(), ErrUnknownSource)

	dup := []VideoEntry{{ID: "a"}, {ID: "a"}}
	assert.Error(t, HostedSource("x", dup).Validate())

	unnamed := []VideoEntry{{Title: "no id"}}
	assert.Error(t, HostedSource("x", unnamed).Validate())
}

func TestChannelEntry_Validate(t *testing.T) {
	assert.Error(t, ChannelEntry{Source: DirectSource("u")}.Validate())
	assert.NoError(t, ChannelEntry{ID: "c", Source: DirectSource("u")}.Validate())
	assert.ErrorIs(t, ChannelEntry{ID: "c"}.Validate(), ErrUnknownSource)
}

func TestChannelEntry_WithVideoHosted(t *testing.T) {
	c := ChannelEntry{ID: "usa", Name: "USA", Source: HostedSource("src-a", sampleVideos)}

	out := c.WithVideo("src-b")
	assert.Equal(t, "src-b", out.Source.DefaultVideoID())
	assert.True(t, out.IsHostedPlaylist())
	assert.Equal(t, "USA", out.Name)

	entries, _ := out.Source.Playlist()
	assert.Equal(t, sampleVideos, entries)

	assert.Equal(t, "src-a", c.Source.DefaultVideoID())
}

func TestChannelEntry_WithVideoDirectKeepsStream(t *testing.T) {
	c := ChannelEntry{ID: "news", Source: DirectSource("https://example.test/live.m3u8")}

	out := c.WithVideo("src-z")
	assert.False(t, out.IsHostedPlaylist())
	assert.Equal(t, "src-z", out.Source.DefaultVideoID())

	// The stream locator still wins for playback
	assert.Equal(t, Playback{Kind: PlaybackHLS, Locator: "https://example.test/live.m3u8"}, PlaybackFor(out))
}

func TestPlaybackFor(t *testing.T) {
	direct := ChannelEntry{ID: "news", Source: DirectSource("https://example.test/live.m3u8")}
	hosted := ChannelEntry{ID: "usa", Source: HostedSource("src-a", sampleVideos)}

	assert.Equal(t, Playback{Kind: PlaybackHLS, Locator: "https://example.test/live.m3u8"}, PlaybackFor(direct))
	assert.Equal(t, Playback{Kind: PlaybackYouTube, Locator: "src-a"}, PlaybackFor(hosted))
}

func TestTarget_Screen(t *testing.T) {
	assert.Equal(t, ScreenPlayer, TargetDirectPlayer.Screen())
	assert.Equal(t, ScreenPlaylist, TargetPlaylistBrowser.Screen())
}

func TestVideoEntry_ThumbnailURL(t *testing.T) {
	v := VideoEntry{SourceID: "Izd-SLokbPY"}
	assert.Equal(t, "https://img.youtube.com/vi/Izd-SLokbPY/mqdefault.jpg", v.ThumbnailURL())
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := NewSession(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	s.SetPlaylist("usa", &PlaylistState{Shuffled: true, Order: []string{"b", "a"}})

	c := s.Clone()
	c.Playlist("usa").Order[0] = "x"
	c.SetPlaylist("other", &PlaylistState{})
	c.ToggleTheme()

	assert.Equal(t, []string{"b", "a"}, s.Playlist("usa").Order)
	assert.Nil(t, s.Playlist("other"))
	assert.False(t, s.DarkMode)
	assert.True(t, c.DarkMode)
}

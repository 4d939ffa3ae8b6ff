package domain

// Target is the screen a channel selection routes to
type Target string

const (
	TargetDirectPlayer    Target = "DirectPlayer"
	TargetPlaylistBrowser Target = "PlaylistBrowser"
)

// Screen names understood by the navigation collaborator
type Screen string

const (
	ScreenMain     Screen = "Main"
	ScreenPlayer   Screen = "Player"
	ScreenPlaylist Screen = "Playlist"
)

// Screen maps a target to the navigator's screen name
func (t Target) Screen() Screen {
	if t == TargetPlaylistBrowser {
		return ScreenPlaylist
	}
	return ScreenPlayer
}

// NavigationRequest asks the navigation collaborator for a screen transition.
// The channel travels as the screen parameter.
type NavigationRequest struct {
	Target  Target
	Channel ChannelEntry
}

// PlaybackKind tells the playback collaborator how to interpret a locator
type PlaybackKind string

const (
	PlaybackHLS     PlaybackKind = "hls"
	PlaybackYouTube PlaybackKind = "youtube"
)

// Playback is handed to the playback collaborator as-is
type Playback struct {
	Kind    PlaybackKind `json:"kind"`
	Locator string       `json:"locator"`
}

// PlaybackFor resolves what the player should open for a channel
func PlaybackFor(c ChannelEntry) Playback {
	if url, ok := c.Source.StreamURL(); ok {
		return Playback{Kind: PlaybackHLS, Locator: url}
	}
	return Playback{Kind: PlaybackYouTube, Locator: c.Source.DefaultVideoID()}
}

package handlers

import (
	"github.com/mahaatv/backend/internal/application"
	"github.com/mahaatv/backend/internal/domain"
)

// VideoResponse represents a playlist entry as rendered by the client
type VideoResponse struct {
	domain.VideoEntry
	ThumbnailURL  string `json:"thumbnail_url"`
	CategoryColor string `json:"category_color"`
}

// ChannelResponse represents a channel descriptor
type ChannelResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Color            string          `json:"color"`
	Gradient         [2]string       `json:"gradient"`
	Icon             string          `json:"icon"`
	ImageURL         string          `json:"image_url,omitempty"`
	StreamURL        string          `json:"stream_url,omitempty"`
	IsHostedPlaylist bool            `json:"is_hosted_playlist"`
	DefaultVideoID   string          `json:"default_video_id,omitempty"`
	Playlist         []VideoResponse `json:"playlist,omitempty"`
}

// NavigationResponse is the screen transition the client performs
type NavigationResponse struct {
	Target string           `json:"target"`
	Screen string           `json:"screen"`
	Params NavigationParams `json:"params"`
}

// NavigationParams carries the channel parameter of a transition
type NavigationParams struct {
	Channel ChannelResponse `json:"channel"`
}

// PlaylistResponse represents the playlist browser contents
type PlaylistResponse struct {
	Channel  ChannelResponse `json:"channel"`
	Shuffled bool            `json:"shuffled"`
	Videos   []VideoResponse `json:"videos"`
}

// ProgramResponse represents one schedule row
type ProgramResponse struct {
	domain.ProgramEntry
	Current    bool   `json:"current"`
	GenreColor string `json:"genre_color"`
}

// DayTabResponse represents one day selector entry
type DayTabResponse struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

// ScheduleResponse represents the schedule screen contents
type ScheduleResponse struct {
	ChannelIndex int               `json:"channel_index"`
	Channel      ChannelResponse   `json:"channel"`
	DayIndex     int               `json:"day_index"`
	Day          DayTabResponse    `json:"day"`
	Days         []DayTabResponse  `json:"days"`
	Programs     []ProgramResponse `json:"programs"`
	Now          string            `json:"now"`
}

// presenter renders domain values into responses
type presenter struct {
	images        func(id string) string
	categoryColor func(category string) string
}

func newPresenter(channels *application.ChannelService, playlists *application.PlaylistService) presenter {
	return presenter{
		images:        channels.ChannelImage,
		categoryColor: playlists.CategoryColor,
	}
}

func (p presenter) video(v domain.VideoEntry) VideoResponse {
	return VideoResponse{
		VideoEntry:    v,
		ThumbnailURL:  v.ThumbnailURL(),
		CategoryColor: p.categoryColor(v.Category),
	}
}

func (p presenter) videos(entries []domain.VideoEntry) []VideoResponse {
	out := make([]VideoResponse, len(entries))
	for i, v := range entries {
		out[i] = p.video(v)
	}
	return out
}

func (p presenter) channel(c domain.ChannelEntry) ChannelResponse {
	resp := ChannelResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		Color:            c.ColorToken,
		Gradient:         [2]string{c.Gradient.Start, c.Gradient.End},
		Icon:             c.Icon,
		ImageURL:         p.images(c.ID),
		IsHostedPlaylist: c.IsHostedPlaylist(),
		DefaultVideoID:   c.Source.DefaultVideoID(),
	}
	if url, ok := c.Source.StreamURL(); ok {
		resp.StreamURL = url
	}
	if entries, ok := c.Source.Playlist(); ok {
		resp.Playlist = p.videos(entries)
	}
	return resp
}

func (p presenter) navigation(req domain.NavigationRequest) NavigationResponse {
	return NavigationResponse{
		Target: string(req.Target),
		Screen: string(req.Target.Screen()),
		Params: NavigationParams{Channel: p.channel(req.Channel)},
	}
}

func (p presenter) playlist(page *application.PlaylistPage) PlaylistResponse {
	return PlaylistResponse{
		Channel:  p.channel(page.Channel),
		Shuffled: page.Shuffled,
		Videos:   p.videos(page.Videos),
	}
}

func (p presenter) schedule(view *application.ScheduleView) ScheduleResponse {
	resp := ScheduleResponse{
		ChannelIndex: view.ChannelIndex,
		Channel:      p.channel(view.Channel),
		DayIndex:     view.DayIndex,
		Day:          DayTabResponse{Label: view.Day.Label, Date: view.Day.Date},
		Days:         make([]DayTabResponse, len(view.Days)),
		Programs:     make([]ProgramResponse, len(view.Programs)),
		Now:          view.Now,
	}
	for i, d := range view.Days {
		resp.Days[i] = DayTabResponse{Label: d.Label, Date: d.Date}
	}
	for i, row := range view.Programs {
		resp.Programs[i] = ProgramResponse{
			ProgramEntry: row.ProgramEntry,
			Current:      row.Current,
			GenreColor:   row.GenreColor,
		}
	}
	return resp
}

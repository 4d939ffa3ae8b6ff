package domain

import "fmt"

// ThumbnailURLFormat is the provider's medium-quality still for a video id
const ThumbnailURLFormat = "https://img.youtube.com/vi/%s/mqdefault.jpg"

// VideoEntry is one on-demand item of a hosted playlist
type VideoEntry struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SourceID      string `json:"source_id"`
	Duration      string `json:"duration"`
	Category      string `json:"category"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
}

// ThumbnailURL returns the provider thumbnail for the video
func (v VideoEntry) ThumbnailURL() string {
	return fmt.Sprintf(ThumbnailURLFormat, v.SourceID)
}

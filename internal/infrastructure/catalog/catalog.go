// Package catalog holds the compiled-in channel catalog and program data.
package catalog

import "github.com/mahaatv/backend/internal/domain"

// USAPlaylist is the hosted playlist of the Mahaa USA channel
var USAPlaylist = []domain.VideoEntry{
	{
		ID:            "nats-8th-conference",
		Title:         "NATS 8th Conference",
		Description:   "North American Telugu Society 8th annual conference highlights and cultural programs",
		SourceID:      "UTArkqpGGCw",
		Duration:      "2:00:30",
		Category:      "Conference",
		ScheduledTime: "06:00",
	},
	{
		ID:            "tana-24th-conference",
		Title:         "TANA 24th Conference",
		Description:   "Telugu Association of North America 24th Annual Conference - Complete coverage",
		SourceID:      "Izd-SLokbPY",
		Duration:      "2:45:30",
		Category:      "Conference",
		ScheduledTime: "09:00",
	},
	{
		ID:            "tana-youth-conference-2025",
		Title:         "TANA Youth Conference 2025",
		Description:   "Young Telugu professionals gathering, networking event and cultural programs",
		SourceID:      "kS9L0lz0EWM",
		Duration:      "1:30:45",
		Category:      "Youth Event",
		ScheduledTime: "11:45",
	},
	{
		ID:            "ktr-dallas",
		Title:         "KTR in Dallas",
		Description:   "KT Rama Rao visit to Dallas - Political discussions and community interaction",
		SourceID:      "wf8tDgoCuX4",
		Duration:      "2:15:20",
		Category:      "Political",
		ScheduledTime: "14:00",
	},
	{
		ID:            "mahaa-icon",
		Title:         "Mahaa ICON",
		SourceID:      "tq6kVYunCTk",
		Duration:      "3:20:15",
		Category:      "Awards",
		ScheduledTime: "16:30",
	},
	{
		ID:            "miss-telugu-usa-2025",
		Title:         "Miss Telugu USA 2025",
		Description:   "Beauty pageant celebrating Telugu culture and heritage in America",
		SourceID:      "RcIX4xjTkf0",
		Duration:      "2:30:15",
		Category:      "Pageant",
		ScheduledTime: "19:00",
	},
	{
		ID:            "kannappa-manchu-vishnu",
		Title:         "Kannappa - Manchu Vishnu in USA",
		Description:   "Actor Manchu Vishnu promotes his upcoming mythological film Kannappa",
		SourceID:      "3erbr7GN3UI",
		Duration:      "1:45:30",
		Category:      "Entertainment",
		ScheduledTime: "20:00",
	},
	{
		ID:            "rana-daggubati-loca-loka",
		Title:         "Rana Daggubati - Loca Loka",
		Description:   "Popular Telugu actor Rana Daggubati in exclusive interview and interaction",
		SourceID:      "-A_xRPsKSWg",
		Duration:      "1:20:45",
		Category:      "Interview",
		ScheduledTime: "22:00",
	},
}

// Channels returns the catalog in display order. Every call builds fresh
// values so callers cannot alter the shared definition.
func Channels() []domain.ChannelEntry {
	return []domain.ChannelEntry{
		{
			ID:          "mahaa-news",
			Name:        "Mahaa News",
			Description: "24×7 News Channel",
			ColorToken:  "blue",
			Gradient:    domain.GradientPair{Start: "#2563eb", End: "#1e40af"},
			Icon:        "📺",
			Source:      domain.DirectSource("https://distro.legitpro.co.in/mahaanews/index.m3u8"),
		},
		{
			ID:          "mahaa-bhakti",
			Name:        "Mahaa Bhakti",
			Description: "24×7 Devotional",
			ColorToken:  "orange",
			Gradient:    domain.GradientPair{Start: "#ea580c", End: "#c2410c"},
			Icon:        "🙏",
			Source:      domain.DirectSource("https://bhakti.mahaaone.com/hls/test.m3u8"),
		},
		{
			ID:          "mahaa-max",
			Name:        "Mahaa Max",
			Description: "Unlimited Entertainment",
			ColorToken:  "purple",
			Gradient:    domain.GradientPair{Start: "#9333ea", End: "#7c3aed"},
			Icon:        "🎬",
			Source:      domain.DirectSource("https://distro.legitpro.co.in/mahaamaxx/index.m3u8"),
		},
		{
			ID:          "mahaa-usa",
			Name:        "Mahaa USA",
			Description: "US Telugu Content",
			ColorToken:  "red",
			Gradient:    domain.GradientPair{Start: "#dc2626", End: "#b91c1c"},
			Icon:        "🇺🇸",
			Source:      domain.HostedSource("Izd-SLokbPY", USAPlaylist),
		},
	}
}

// ChannelImages maps channel ids to card artwork
var ChannelImages = map[string]string{
	"mahaa-news":   "https://raw.githubusercontent.com/skillgekku/media-assets/refs/heads/main/news.png",
	"mahaa-bhakti": "https://raw.githubusercontent.com/skillgekku/media-assets/refs/heads/main/baks.png",
	"mahaa-max":    "https://raw.githubusercontent.com/skillgekku/media-assets/refs/heads/main/max.png",
	"mahaa-usa":    "https://raw.githubusercontent.com/skillgekku/media-assets/refs/heads/main/MAHAA%20USA%20PNG.png",
}

// CategoryColors maps playlist categories to badge colors
var CategoryColors = map[string]string{
	"Conference":    "#2563eb",
	"Youth Event":   "#16a34a",
	"Political":     "#dc2626",
	"Awards":        "#eab308",
	"Entertainment": "#9333ea",
	"Interview":     "#ea580c",
	"Pageant":       "#ec4899",
}

// GenreColors maps program genres to badge colors
var GenreColors = map[string]string{
	"Breaking News":    "#dc2626",
	"News":             "#ef4444",
	"Politics":         "#2563eb",
	"Live Event":       "#9333ea",
	"Prayer":           "#ea580c",
	"Devotional Music": "#f97316",
	"Movie":            "#dc2626",
	"Comedy":           "#84cc16",
	"Music":            "#a855f7",
}

package domain

// ThemePalette is the color set read by the presentation layer
type ThemePalette struct {
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	PrimaryText   string `json:"primary_text"`
	SecondaryText string `json:"secondary_text"`
	BorderColor   string `json:"border_color"`
}

var (
	LightPalette = ThemePalette{
		Background:    "#f5f5f5",
		Surface:       "#ffffff",
		PrimaryText:   "#1a1a1a",
		SecondaryText: "#666666",
		BorderColor:   "#e0e0e0",
	}

	DarkPalette = ThemePalette{
		Background:    "#0a0a0a",
		Surface:       "#1a1a1a",
		PrimaryText:   "#ffffff",
		SecondaryText: "#999999",
		BorderColor:   "#333333",
	}
)

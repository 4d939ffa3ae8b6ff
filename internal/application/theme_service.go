package application

import (
	"github.com/google/uuid"
	"github.com/mahaatv/backend/internal/domain"
	"github.com/mahaatv/backend/internal/pkg/logger"
)

// ResolveTheme maps the dark-mode flag to one of the two fixed palettes
func ResolveTheme(isDarkMode bool) domain.ThemePalette {
	if isDarkMode {
		return domain.DarkPalette
	}
	return domain.LightPalette
}

// ThemeState is what a theme consumer reads
type ThemeState struct {
	DarkMode bool                `json:"dark_mode"`
	Palette  domain.ThemePalette `json:"palette"`
}

// ThemeService handles the viewer's light/dark preference
type ThemeService struct {
	sessions *SessionService
}

// NewThemeService creates a new theme service
func NewThemeService(sessions *SessionService) *ThemeService {
	return &ThemeService{sessions: sessions}
}

// GetTheme returns the viewer's current palette
func (s *ThemeService) GetTheme(sessionID uuid.UUID) (*ThemeState, error) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return &ThemeState{DarkMode: session.DarkMode, Palette: ResolveTheme(session.DarkMode)}, nil
}

// ToggleTheme flips the viewer's dark-mode flag
func (s *ThemeService) ToggleTheme(sessionID uuid.UUID) (*ThemeState, error) {
	session, err := s.sessions.Mutate(sessionID, func(sess *domain.Session) error {
		sess.ToggleTheme()
		return nil
	})
	if err != nil {
		return nil, err
	}

	sessionLog := logger.Session(sessionID)
	sessionLog.Debug().
		Bool("dark_mode", session.DarkMode).
		Msg("Theme toggled")

	return &ThemeState{DarkMode: session.DarkMode, Palette: ResolveTheme(session.DarkMode)}, nil
}

// Palettes returns both palettes keyed by mode name
func (s *ThemeService) Palettes() map[string]domain.ThemePalette {
	return map[string]domain.ThemePalette{
		"light": ResolveTheme(false),
		"dark":  ResolveTheme(true),
	}
}

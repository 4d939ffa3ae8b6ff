package application

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mahaatv/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTheme(t *testing.T) {
	assert.Equal(t, domain.DarkPalette, ResolveTheme(true))
	assert.Equal(t, domain.LightPalette, ResolveTheme(false))
	assert.Equal(t, ResolveTheme(true), ResolveTheme(true))

	assert.Equal(t, "#0a0a0a", ResolveTheme(true).Background)
	assert.Equal(t, "#f5f5f5", ResolveTheme(false).Background)
}

func TestThemeService_Toggle(t *testing.T) {
	s := newTestServices()
	sess, err := s.sessions.CreateSession()
	require.NoError(t, err)

	theme, err := s.themes.GetTheme(sess.ID)
	require.NoError(t, err)
	assert.False(t, theme.DarkMode)
	assert.Equal(t, domain.LightPalette, theme.Palette)

	theme, err = s.themes.ToggleTheme(sess.ID)
	require.NoError(t, err)
	assert.True(t, theme.DarkMode)
	assert.Equal(t, domain.DarkPalette, theme.Palette)

	theme, err = s.themes.GetTheme(sess.ID)
	require.NoError(t, err)
	assert.True(t, theme.DarkMode)

	theme, err = s.themes.ToggleTheme(sess.ID)
	require.NoError(t, err)
	assert.False(t, theme.DarkMode)
}

func TestThemeService_UnknownSession(t *testing.T) {
	s := newTestServices()

	_, err := s.themes.ToggleTheme(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestThemeService_Palettes(t *testing.T) {
	s := newTestServices()

	palettes := s.themes.Palettes()
	assert.Equal(t, domain.LightPalette, palettes["light"])
	assert.Equal(t, domain.DarkPalette, palettes["dark"])
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahaatv/backend/internal/application"
	"github.com/mahaatv/backend/internal/infrastructure/metrics"
)

// ThemeHandler handles HTTP requests for the viewer's palette
type ThemeHandler struct {
	service *application.ThemeService
	metrics metrics.Recorder
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(service *application.ThemeService, recorder metrics.Recorder) *ThemeHandler {
	return &ThemeHandler{service: service, metrics: recorder}
}

// Get returns the current palette
func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	theme, err := h.service.GetTheme(sessionID(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": theme,
	})
}

// Toggle flips between light and dark
func (h *ThemeHandler) Toggle(c *fiber.Ctx) error {
	theme, err := h.service.ToggleTheme(sessionID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	h.metrics.IncThemeToggles(theme.DarkMode)

	return c.JSON(fiber.Map{
		"data": theme,
	})
}

// Palettes returns both palettes
func (h *ThemeHandler) Palettes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": h.service.Palettes(),
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahaatv/backend/internal/application"
	"github.com/mahaatv/backend/internal/infrastructure/system"
)

// SystemHandler handles health requests
type SystemHandler struct {
	channels *application.ChannelService
	sessions *application.SessionService
	probe    *system.Probe
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(
	channels *application.ChannelService,
	sessions *application.SessionService,
	probe *system.Probe,
) *SystemHandler {
	return &SystemHandler{channels: channels, sessions: sessions, probe: probe}
}

// Health reports liveness, catalog size and process statistics
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	sessions, err := h.sessions.Count()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"data": fiber.Map{
			"channels": h.channels.Count(),
			"sessions": sessions,
			"system":   h.probe.Snapshot(),
		},
	})
}

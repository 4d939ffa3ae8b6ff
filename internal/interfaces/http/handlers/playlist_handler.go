package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahaatv/backend/internal/application"
	"github.com/mahaatv/backend/internal/infrastructure/metrics"
)

// PlaylistHandler handles the playlist browser of hosted channels
type PlaylistHandler struct {
	service *application.PlaylistService
	metrics metrics.Recorder
	present presenter
}

// NewPlaylistHandler creates a new playlist handler
func NewPlaylistHandler(
	service *application.PlaylistService,
	channels *application.ChannelService,
	recorder metrics.Recorder,
) *PlaylistHandler {
	return &PlaylistHandler{
		service: service,
		metrics: recorder,
		present: newPresenter(channels, service),
	}
}

// Get returns the viewer's current playlist order
func (h *PlaylistHandler) Get(c *fiber.Ctx) error {
	page, err := h.service.Playlist(sessionID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": h.present.playlist(page),
	})
}

// Shuffle toggles shuffle for the viewer's playlist
func (h *PlaylistHandler) Shuffle(c *fiber.Ctx) error {
	page, err := h.service.ToggleShuffle(sessionID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	h.metrics.IncShuffleToggles(page.Shuffled)

	return c.JSON(fiber.Map{
		"data": h.present.playlist(page),
	})
}

// SelectVideo routes a playlist entry to the player
func (h *PlaylistHandler) SelectVideo(c *fiber.Ctx) error {
	req, err := h.service.SelectVideo(c.Params("id"), c.Params("videoId"))
	if err != nil {
		return errorResponse(c, err)
	}
	h.metrics.IncSelections(string(req.Target))

	return c.JSON(fiber.Map{
		"data": h.present.navigation(req),
	})
}

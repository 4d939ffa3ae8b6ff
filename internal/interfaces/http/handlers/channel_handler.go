package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahaatv/backend/internal/application"
	"github.com/mahaatv/backend/internal/infrastructure/cache"
	"github.com/mahaatv/backend/internal/infrastructure/metrics"
)

const channelListKey = "channels:list"

// ChannelHandler handles HTTP requests for channels
type ChannelHandler struct {
	service *application.ChannelService
	cache   cache.ResponseCache
	metrics metrics.Recorder
	present presenter
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(
	service *application.ChannelService,
	playlists *application.PlaylistService,
	responseCache cache.ResponseCache,
	recorder metrics.Recorder,
) *ChannelHandler {
	return &ChannelHandler{
		service: service,
		cache:   responseCache,
		metrics: recorder,
		present: newPresenter(service, playlists),
	}
}

// List returns all channels in display order
func (h *ChannelHandler) List(c *fiber.Ctx) error {
	return sendCached(c, h.cache, channelListKey, func() (interface{}, error) {
		channels, err := h.service.ListChannels()
		if err != nil {
			return nil, err
		}
		out := make([]ChannelResponse, len(channels))
		for i, ch := range channels {
			out[i] = h.present.channel(ch)
		}
		return out, nil
	})
}

// Get returns a single channel
func (h *ChannelHandler) Get(c *fiber.Ctx) error {
	channel, err := h.service.GetChannel(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": h.present.channel(channel),
	})
}

// Select returns where the client should navigate for a channel
func (h *ChannelHandler) Select(c *fiber.Ctx) error {
	req, err := h.service.SelectChannel(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	h.metrics.IncSelections(string(req.Target))

	return c.JSON(fiber.Map{
		"data": h.present.navigation(req),
	})
}

// Playback returns the locator the player opens for a channel
func (h *ChannelHandler) Playback(c *fiber.Ctx) error {
	playback, err := h.service.Playback(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": playback,
	})
}

package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mahaatv/backend/internal/application"
	"github.com/mahaatv/backend/internal/infrastructure/cache"
)

// ScheduleHandler handles program schedule requests
type ScheduleHandler struct {
	service *application.ScheduleService
	cache   cache.ResponseCache
	present presenter
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(
	service *application.ScheduleService,
	channels *application.ChannelService,
	playlists *application.PlaylistService,
	responseCache cache.ResponseCache,
) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		cache:   responseCache,
		present: newPresenter(channels, playlists),
	}
}

// SelectScheduleRequest represents a schedule selection update. Omitted
// fields keep the stored selection.
type SelectScheduleRequest struct {
	ChannelIndex *int `json:"channel_index,omitempty"`
	DayIndex     *int `json:"day_index,omitempty"`
}

// Get returns the schedule of one channel and day. The current-program flag
// depends on the minute, so the cache key carries it.
func (h *ScheduleHandler) Get(c *fiber.Ctx) error {
	channelIndex, err := queryIndex(c, "channel")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	dayIndex, err := queryIndex(c, "day")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	key := fmt.Sprintf("schedule:%d:%d:%s", channelIndex, dayIndex, h.service.Now())

	return sendCached(c, h.cache, key, func() (interface{}, error) {
		view, err := h.service.View(channelIndex, dayIndex)
		if err != nil {
			return nil, err
		}
		return h.present.schedule(view), nil
	})
}

// queryIndex reads an integer query parameter. A missing parameter means 0.
func queryIndex(c *fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q", name, raw)
	}
	return n, nil
}

// SessionGet returns the schedule the viewer last selected
func (h *ScheduleHandler) SessionGet(c *fiber.Ctx) error {
	view, err := h.service.SessionView(sessionID(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": h.present.schedule(view),
	})
}

// SessionSelect stores the viewer's channel and day selection
func (h *ScheduleHandler) SessionSelect(c *fiber.Ctx) error {
	var req SelectScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	view, err := h.service.SelectForSession(sessionID(c), req.ChannelIndex, req.DayIndex)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": h.present.schedule(view),
	})
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mahaatv/backend/internal/application"
)

// SessionLocalKey is where the session middleware stores the session id
const SessionLocalKey = "session_id"

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrChannelNotFound),
		errors.Is(err, application.ErrVideoNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, application.ErrIndexOutOfRange),
		errors.Is(err, application.ErrInvalidSession):
		return fiber.StatusBadRequest
	case errors.Is(err, application.ErrNotHostedPlaylist):
		return fiber.StatusConflict
	case errors.Is(err, application.ErrSessionNotFound):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func sessionID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(SessionLocalKey).(uuid.UUID)
	return id
}

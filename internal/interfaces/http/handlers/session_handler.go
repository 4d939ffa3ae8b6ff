package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahaatv/backend/internal/application"
)

// SessionHandler handles viewer session lifecycle
type SessionHandler struct {
	service *application.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service *application.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Create starts a new viewer session
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	session, err := h.service.CreateSession()
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": session,
	})
}

// Me returns the current session state
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	session, err := h.service.GetSession(sessionID(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"data": session,
	})
}

// Delete ends the current session
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteSession(sessionID(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

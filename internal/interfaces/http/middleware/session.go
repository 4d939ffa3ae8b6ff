package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mahaatv/backend/internal/application"
	"github.com/mahaatv/backend/internal/interfaces/http/handlers"
)

// SessionHeader carries the viewer session id
const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the viewer session of a request
type SessionMiddleware struct {
	sessions *application.SessionService
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(sessions *application.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Require rejects requests without a known session and stores the session
// id in Locals for the handlers
func (m *SessionMiddleware) Require() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(SessionHeader)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing session header",
			})
		}

		id, err := application.ParseSessionID(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid session id",
			})
		}

		if _, err := m.sessions.GetSession(id); err != nil {
			if errors.Is(err, application.ErrSessionNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "unknown or expired session",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals(handlers.SessionLocalKey, id)

		return c.Next()
	}
}

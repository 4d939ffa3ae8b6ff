package handlers

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/mahaatv/backend/internal/infrastructure/cache"
)

// sendCached answers with the cached body for key, or renders, stores and
// sends a fresh one. Failed renders are never cached.
func sendCached(c *fiber.Ctx, store cache.ResponseCache, key string, render func() (interface{}, error)) error {
	if body, ok := store.Get(key); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}

	data, err := render()
	if err != nil {
		return errorResponse(c, err)
	}

	body, err := json.Marshal(fiber.Map{"data": data})
	if err != nil {
		return err
	}
	store.Set(key, body)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mahaatv/backend/internal/infrastructure/metrics"
)

// Metrics records request counts and latency per route template
func Metrics(recorder metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		route := c.Route().Path
		recorder.IncRequestsTotal(route, status)
		recorder.ObserveRequestDuration(route, time.Since(start))

		return err
	}
}

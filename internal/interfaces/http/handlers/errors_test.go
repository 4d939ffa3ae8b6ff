package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mahaatv/backend/internal/application"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: x", application.ErrChannelNotFound), fiber.StatusNotFound},
		{application.ErrVideoNotFound, fiber.StatusNotFound},
		{fmt.Errorf("day 5: %w", application.ErrIndexOutOfRange), fiber.StatusBadRequest},
		{application.ErrInvalidSession, fiber.StatusBadRequest},
		{application.ErrNotHostedPlaylist, fiber.StatusConflict},
		{application.ErrSessionNotFound, fiber.StatusUnauthorized},
		{errors.New("disk on fire"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

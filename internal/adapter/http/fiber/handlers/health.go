package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	version string
	started time.Time
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version: version,
		started: time.Now(),
	}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.started).String(),
	})
}

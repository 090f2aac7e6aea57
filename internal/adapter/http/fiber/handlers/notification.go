package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/ports"
)

type NotificationHandler struct {
	notifier ports.NotifierService
	log      *zap.Logger
}

func NewNotificationHandler(notifier ports.NotifierService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
		log:      log,
	}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.notifier.Notifications())
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.notifier.MarkRead(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) ClearAll(c *fiber.Ctx) error {
	h.notifier.ClearAll()
	return c.SendStatus(fiber.StatusNoContent)
}

// Status reports the simulated realtime connection state.
func (h *NotificationHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"connected":   h.notifier.Connected(),
		"last_update": h.notifier.LastUpdate(),
	})
}

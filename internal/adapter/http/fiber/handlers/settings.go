package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/domain"
	"github.com/chargehub/chargehub/internal/ports"
)

type SettingsHandler struct {
	repo ports.SettingsRepository
	log  *zap.Logger
}

func NewSettingsHandler(repo ports.SettingsRepository, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		repo: repo,
		log:  log,
	}
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.repo.Load(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(settings)
}

// Put replaces the whole settings record.
func (h *SettingsHandler) Put(c *fiber.Ctx) error {
	var settings domain.Settings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if err := h.repo.Store(c.Context(), settings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(settings)
}

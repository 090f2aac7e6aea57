package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/ports"
	"github.com/chargehub/chargehub/internal/service/session"
)

type SessionHandler struct {
	service ports.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service ports.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log,
	}
}

type StartSessionRequest struct {
	ChargerID   string     `json:"charger_id"`
	ChargerName string     `json:"charger_name"`
	Network     string     `json:"network"`
	MaxEnergy   float64    `json:"max_energy,omitempty"`
	TargetTime  *time.Time `json:"target_time,omitempty"`
}

func (h *SessionHandler) Start(c *fiber.Ctx) error {
	var req StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.ChargerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "charger_id is required"})
	}

	created, err := h.service.Start(c.Context(), ports.StartRequest{
		ChargerID:   req.ChargerID,
		ChargerName: req.ChargerName,
		Network:     req.Network,
		MaxEnergy:   req.MaxEnergy,
		TargetTime:  req.TargetTime,
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionActive) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *SessionHandler) Stop(c *fiber.Ctx) error {
	id := c.Params("id")

	stopped, err := h.service.Stop(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, session.ErrSessionNotActive):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(stopped)
}

func (h *SessionHandler) Active(c *fiber.Ctx) error {
	active, err := h.service.Active(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if active == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No active session"})
	}
	return c.JSON(active)
}

func (h *SessionHandler) History(c *fiber.Ctx) error {
	history, err := h.service.History(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(history)
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/ports"
	"github.com/chargehub/chargehub/internal/service/account"
)

type AccountHandler struct {
	service ports.AccountService
	log     *zap.Logger
}

func NewAccountHandler(service ports.AccountService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		log:     log,
	}
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	accounts, err := h.service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(accounts)
}

type ConnectAccountRequest struct {
	Email string `json:"email"`
}

func (h *AccountHandler) Connect(c *fiber.Ctx) error {
	network := c.Params("network")

	var req ConnectAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}

	accounts, err := h.service.Connect(c.Context(), network, req.Email)
	if err != nil {
		if errors.Is(err, account.ErrUnknownNetwork) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(accounts)
}

func (h *AccountHandler) Disconnect(c *fiber.Ctx) error {
	network := c.Params("network")

	accounts, err := h.service.Disconnect(c.Context(), network)
	if err != nil {
		if errors.Is(err, account.ErrUnknownNetwork) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(accounts)
}

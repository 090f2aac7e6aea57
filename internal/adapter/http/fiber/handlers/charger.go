package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/adapter/directory"
	"github.com/chargehub/chargehub/internal/ports"
)

type ChargerHandler struct {
	directory ports.DirectoryService
	notifier  ports.NotifierService
	log       *zap.Logger
}

func NewChargerHandler(directoryService ports.DirectoryService, notifier ports.NotifierService, log *zap.Logger) *ChargerHandler {
	return &ChargerHandler{
		directory: directoryService,
		notifier:  notifier,
		log:       log,
	}
}

// Query is the raw station surface: it answers with the fixture records in
// the upstream schema, selected by coarse location. The radius parameter is
// accepted but not applied here.
func (h *ChargerHandler) Query(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "latitude is required"})
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "longitude is required"})
	}

	return c.JSON(directory.FixtureStations(lat, lng))
}

// Nearby resolves chargers around a coordinate: distance-annotated, sorted
// ascending, radius-filtered. The result set becomes the watched set for
// live availability updates.
func (h *ChargerHandler) Nearby(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "lat is required"})
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "lon is required"})
	}
	radius, _ := strconv.ParseFloat(c.Query("radius"), 64)

	chargers, err := h.directory.Lookup(c.Context(), lat, lon, radius)
	if err != nil {
		if errors.Is(err, directory.ErrFetchFailed) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Charger directory unavailable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	h.notifier.Watch(chargers)
	return c.JSON(chargers)
}

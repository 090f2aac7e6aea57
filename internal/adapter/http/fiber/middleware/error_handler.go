package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler maps handler errors onto a JSON error body. Errors that
// carry no status of their own surface as 500 and are the only ones logged.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if code == fiber.StatusInternalServerError {
			log.Error("Unhandled request error",
				zap.Error(err),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

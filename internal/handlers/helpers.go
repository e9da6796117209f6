package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/jobportal/jobportal-backend/internal/dto"
)

// serverError logs the failure and returns it with its diagnostic text.
// Leaking the underlying message is a deliberate debugging convenience
// at this tier.
func serverError(c *fiber.Ctx, err error) error {
	slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Server error: " + err.Error(),
	})
}

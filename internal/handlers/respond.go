package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

// respondError translates service and repository errors into the API
// error envelope: not-found errors become 404, validation errors 400,
// anything else 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrProductNotFound),
		errors.Is(err, repositories.ErrCartItemNotFound),
		errors.Is(err, repositories.ErrOrderNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidStatus):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(models.Response{Error: err.Error()})
}

// respondData wraps a payload in the single-entity envelope.
func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(models.Response{Data: data})
}

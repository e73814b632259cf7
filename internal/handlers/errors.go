package handlers

import (
	"errors"
	"fmt"
	"log"

	"ratehub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError maps a domain error to its HTTP status and a readable message.
// Anything outside the domain taxonomy is logged and answered with a generic
// 500 so internals never leak to clients.
func respondError(c *fiber.Ctx, err error) error {
	var status int
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidOwner):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrStoreNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrDuplicateEmail), errors.Is(err, services.ErrAlreadyOwnsStore):
		status = fiber.StatusConflict
	default:
		log.Printf("Internal error handling %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// respondValidationErrors renders go-playground validation failures as a
// field-to-reason map with a 400 status.
func respondValidationErrors(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

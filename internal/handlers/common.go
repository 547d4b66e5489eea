package handlers

import (
	"fmt"
	"log"

	"storefront/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError converts a service failure into the structured error body,
// picking the HTTP status from the error kind.
func respondError(c *fiber.Ctx, err error) error {
	status := apperrors.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("Request failed: %v", err)
	}
	return c.Status(status).JSON(fiber.Map{
		"code":   apperrors.CodeOf(err),
		"detail": apperrors.DetailOf(err),
	})
}

// respondValidationError reports field-level validation failures as a 422.
func respondValidationError(c *fiber.Ctx, err error) error {
	errorMessages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"code":   "validation_error",
		"detail": "Validation failed",
		"errors": errorMessages,
	})
}

// respondBadBody reports an unparseable request body.
func respondBadBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"code":   "validation_error",
		"detail": "Invalid request body: " + err.Error(),
	})
}

package server

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// FieldError is the per-field entry of a validation failure response.
type FieldError struct {
	Field       string `json:"field"`
	Constraints string `json:"constraints"`
}

// errorHandler turns errors surfaced by handlers into the structured
// JSON responses the API contract promises.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	if verrs, ok := asValidationErrors(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  formatValidationErrors(verrs),
		})
	}

	var richErr *errors.Error
	if errors.As(err, &richErr) {
		status := richErr.Code
		if status == 0 {
			status = statusFromCategory(richErr.Category)
		}

		s.logger.Debug("request error",
			"status", status,
			"text_code", richErr.TextCode,
			"message", richErr.Message,
		)

		body := fiber.Map{"message": richErr.Message}
		if richErr.TextCode != "" {
			body["text_code"] = richErr.TextCode
		}
		return c.Status(status).JSON(body)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message": fiberErr.Message,
		})
	}

	s.logger.Error("unexpected request error", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "An unexpected server error occurred",
	})
}

func asValidationErrors(err error) (validation.Errors, bool) {
	verrs, ok := err.(validation.Errors)
	return verrs, ok
}

func formatValidationErrors(verrs validation.Errors) []FieldError {
	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]FieldError, 0, len(fields))
	for _, field := range fields {
		out = append(out, FieldError{
			Field:       field,
			Constraints: verrs[field].Error(),
		})
	}
	return out
}

func statusFromCategory(category errors.Category) int {
	switch category {
	case errors.CategoryValidation, errors.CategoryBadInput:
		return fiber.StatusBadRequest
	case errors.CategoryConflict:
		return fiber.StatusConflict
	case errors.CategoryAuth, errors.CategoryAuthz:
		return fiber.StatusUnauthorized
	case errors.CategoryNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

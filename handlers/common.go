package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"finance-manager-be/apperr"
)

var validate = validator.New()

// fieldErrors carries per-field validation failures until respondError
// writes them out.
type fieldErrors struct {
	fields map[string]string
}

func (e *fieldErrors) Error() string { return "validation failed" }

// parseBody unmarshals and validates the request body. The returned error is
// meant for respondError, which reports validation failures as 400 with
// per-field details.
func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return apperr.Validation("Invalid request body")
	}

	if err := validate.Struct(dest); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			details := make(map[string]string, len(fieldErrs))
			for _, fe := range fieldErrs {
				details[fe.Field()] = fe.Tag()
			}
			return &fieldErrors{fields: details}
		}
		return apperr.Validation("Validation failed")
	}
	return nil
}

// respondError maps a service error to an HTTP status. Unclassified errors
// become an opaque 500.
func respondError(c *fiber.Ctx, err error) error {
	var fieldErrs *fieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fieldErrs.fields,
		})
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	status := fiber.StatusInternalServerError
	switch appErr.Kind {
	case apperr.KindValidation, apperr.KindInsufficientFunds:
		status = fiber.StatusBadRequest
	case apperr.KindNotFound:
		status = fiber.StatusNotFound
	case apperr.KindUnauthorized:
		status = fiber.StatusUnauthorized
	case apperr.KindConflict:
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": appErr.Message})
}

// parseTimeQuery parses an optional RFC 3339 query parameter. Empty values
// yield the zero time; present but unparsable values are a validation error.
func parseTimeQuery(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperr.Newf(apperr.KindValidation, "invalid %s: expected an RFC 3339 timestamp", name)
	}
	return ts, nil
}

// pathID parses a numeric path parameter.
func pathID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Newf(apperr.KindValidation, "invalid %s", name)
	}
	return uint(id), nil
}

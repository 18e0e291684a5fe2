// Package validation centralizes parameter validation for generator and
// algorithm option structs using struct tags.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Struct validates a struct using its `validate` tags, returning a readable
// summary of every failed field.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into a single readable
// message listing each failed field and constraint.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param()))
		case "gt":
			parts = append(parts, fmt.Sprintf("%s must be greater than %s", fieldErr.Field(), fieldErr.Param()))
		case "gtefield":
			parts = append(parts, fmt.Sprintf("%s must not be less than %s", fieldErr.Field(), fieldErr.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s validation", fieldErr.Field(), fieldErr.Tag()))
		}
	}
	return errors.New(strings.Join(parts, "; "))
}

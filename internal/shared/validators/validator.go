package validators

import (
	"pageview-analytics/internal/shared/patterns"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagPattern validates that a string field compiles as a URL filter pattern.
// Empty strings pass; combine with required when the field is mandatory.
const TagPattern = "pattern"

// New creates a new validator instance with the custom tags registered.
func New() *Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(TagPattern, validatePattern)
	return validate
}

func validatePattern(fl validator.FieldLevel) bool {
	expr := fl.Field().String()
	if expr == "" {
		return true
	}
	pattern, err := patterns.Compile(expr)
	if err != nil {
		return false
	}
	_ = pattern.Close()
	return true
}

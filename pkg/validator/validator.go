package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FirstValidationError renders the first failed field as a single
// client-facing message, matching the flat error envelope.
func (cv *CustomValidator) FirstValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := lowerFirst(e.Field())
			switch e.Tag() {
			case "required":
				return field + " is required"
			case "min":
				return field + " must contain at least " + e.Param() + " item(s)"
			case "gte":
				return field + " must be greater than or equal to " + e.Param()
			case "lte":
				return field + " must be less than or equal to " + e.Param()
			default:
				return field + " is invalid"
			}
		}
	}
	return "Invalid request body"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

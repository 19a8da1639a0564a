// internal/utils/validator.go
package utils

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("hex_color", validateHexColor)
	validate.RegisterValidation("price_string", validatePriceString)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateHexColor(fl validator.FieldLevel) bool {
	code := fl.Field().String()

	if len(code) != 4 && len(code) != 7 {
		return false
	}
	if code[0] != '#' {
		return false
	}
	for _, char := range code[1:] {
		switch {
		case char >= '0' && char <= '9':
		case char >= 'a' && char <= 'f':
		case char >= 'A' && char <= 'F':
		default:
			return false
		}
	}
	return true
}

// Prices arrive as form text; accept empty or a non-negative number.
func validatePriceString(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	f, err := strconv.ParseFloat(value, 64)
	return err == nil && f >= 0
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "hex_color":
		return e.Field() + " must be a hex color code like #1a2b3c"
	case "price_string":
		return e.Field() + " must be a non-negative number"
	default:
		return e.Field() + " is invalid"
	}
}

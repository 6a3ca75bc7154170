package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wires go-playground/validator into Echo so handlers
// can call c.Validate on bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used by the server.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as 400 errors
// listing every offending field.
func (v *RequestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return BadRequestError("Invalid request: " + err.Error())
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("field '%s' is required", fe.Field()))
		case "required_without":
			problems = append(problems, fmt.Sprintf("field '%s' is required when '%s' is absent", fe.Field(), fe.Param()))
		default:
			problems = append(problems, fmt.Sprintf("field '%s' failed '%s' validation", fe.Field(), fe.Tag()))
		}
	}

	return BadRequestError("Invalid request: " + strings.Join(problems, "; "))
}

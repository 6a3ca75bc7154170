package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"portside/internal/ops"
)

// ErrorDetail is the failure payload carried under "detail" in every
// error response: the same success=false envelope shape the tool
// operations produce, so agent and dashboard parse one format.
type ErrorDetail struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	SystemSource     string   `json:"systemSource,omitempty"`
	ValidationErrors []string `json:"validationErrors,omitempty"`
}

// APIError is a structured API error with an HTTP status code. It
// marshals as {"detail": {...}}.
type APIError struct {
	Code   int         `json:"-"`
	Detail ErrorDetail `json:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Detail.Message
}

// BadRequestError builds a 400 error for malformed or invalid requests.
func BadRequestError(message string) *APIError {
	return &APIError{
		Code:   http.StatusBadRequest,
		Detail: ErrorDetail{Success: false, Message: message},
	}
}

// toolError converts a tool-operation failure into its HTTP shape:
// NotFound -> 404, ValidationFailed -> 400 with the full violation
// list. Anything else passes through as an unhandled fault.
func toolError(err error) error {
	var notFound *ops.NotFoundError
	if errors.As(err, &notFound) {
		return &APIError{
			Code: http.StatusNotFound,
			Detail: ErrorDetail{
				Success:      false,
				Message:      notFound.Message,
				SystemSource: notFound.SystemSource,
			},
		}
	}

	var validation *ops.ValidationError
	if errors.As(err, &validation) {
		return &APIError{
			Code: http.StatusBadRequest,
			Detail: ErrorDetail{
				Success:          false,
				Message:          validation.Message,
				SystemSource:     validation.SystemSource,
				ValidationErrors: validation.Violations,
			},
		}
	}

	return err
}

// HTTPErrorHandler is the custom error handler for Echo. Every error
// body has the {"detail": {...}} shape.
func HTTPErrorHandler(err error, c echo.Context) {
	// Don't send response if already sent
	if c.Response().Committed {
		return
	}

	var apiErr *APIError

	switch e := err.(type) {
	case *APIError:
		apiErr = e
	case *echo.HTTPError:
		apiErr = &APIError{
			Code: e.Code,
			Detail: ErrorDetail{
				Success: false,
				Message: fmt.Sprintf("%v", e.Message),
			},
		}
	default:
		message := "Internal server error"
		// Don't expose internal errors outside debug mode
		if c.Echo().Debug {
			message = err.Error()
		}
		apiErr = &APIError{
			Code:   http.StatusInternalServerError,
			Detail: ErrorDetail{Success: false, Message: message},
		}
	}

	if err := c.JSON(apiErr.Code, apiErr); err != nil {
		c.Logger().Error(err)
	}
}

package response

import (
	"errors"
	"net/http"
	"strings"

	apperrors "threadline/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorBody is the failure envelope shared by every JSON endpoint.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func OK(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, payload)
}

// Error translates an error into the JSON failure envelope. Validation errors
// become 400s with a field message, AppErrors keep their status, anything else
// collapses to a generic 500 so raw error text never reaches the client.
func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{
			Success: false,
			Error:   appErr.Message,
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Success: false,
		Error:   "An unexpected error occurred",
	})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "oneof":
			message = field + " must be one of: " + err.Param()
		case "url":
			message = field + " must be a valid URL"
		case "min":
			message = field + " must be at least " + err.Param()
		case "max":
			message = field + " must be at most " + err.Param()
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{
			Success: false,
			Error:   message,
		})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{
		Success: false,
		Error:   "Invalid input data",
	})
}

// Package response shapes the bodies returned to mobile clients.
package response

import (
	"net/http"
	"strconv"

	domainerrors "surplus/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code   string            `json:"code"`             // Numeric client error code, e.g. "701"
	Error  string            `json:"error"`            // Human-readable message
	Fields map[string]string `json:"fields,omitempty"` // Field-level validation failures
}

// Success writes data as the raw JSON body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent acknowledges a mutation with an empty 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes an error body. Fields are dropped for 5xx responses.
func Error(c echo.Context, statusCode int, errorCode string, message string, fields map[string]string) error {
	if statusCode >= http.StatusInternalServerError {
		fields = nil
	}
	if errorCode == "" {
		errorCode = strconv.Itoa(statusCode)
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Code:   errorCode,
		Error:  message,
		Fields: fields,
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "", message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, "", message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "", domainerrors.ErrInternalError.Message(), nil)
}

// HandleAppError renders application errors and passes anything else on to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
		return errors.WithStack(err)
	}

	var fields map[string]string
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		fields = validationErr.Fields()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), fields)
}

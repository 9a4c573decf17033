package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the unified API envelope: {status, message, ...}.
// Status is "success" or "error"; Token and Total only appear on the
// responses that carry them.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	Total   *int64 `json:"total,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// SuccessWithToken writes a successful login response carrying only the token.
func SuccessWithToken(c echo.Context, token string, message string) error {
	return c.JSON(http.StatusOK, Response{
		Status:  "success",
		Message: message,
		Token:   token,
	})
}

// SuccessWithTotal writes a successful listing response with its total count.
func SuccessWithTotal(c echo.Context, statusCode int, data any, total int64, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Status:  "success",
		Message: message,
		Total:   &total,
		Data:    data,
	})
}

// Error writes an error response
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Conflict 409 error
func Conflict(c echo.Context, message string) error {
	return Error(c, http.StatusConflict, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}

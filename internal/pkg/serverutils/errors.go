package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// HTTPError is a client-facing failure with a fixed status and message.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func BadRequest(message string) *HTTPError {
	return NewHTTPError(fiber.StatusBadRequest, message)
}

func NotFound(message string) *HTTPError {
	return NewHTTPError(fiber.StatusNotFound, message)
}

package serverutils

import (
	"errors"

	"bulletin-board-be/internal/constant"
	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into JSON
// {"error": ...} responses. Unknown errors are logged and reported as 500
// without leaking their text.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := classify(err)
		if code >= fiber.StatusInternalServerError {
			log.Error("http", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err,
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(message))
	}
}

func classify(err error) (int, string) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}

	switch {
	case errors.Is(err, entity.ErrBoardNotFound):
		return fiber.StatusNotFound, constant.MessageBoardNotFound
	case errors.Is(err, entity.ErrNoteNotFound):
		return fiber.StatusNotFound, constant.MessageNoteNotFound
	case errors.Is(err, entity.ErrBoardIDRequired):
		return fiber.StatusBadRequest, constant.MessageMissingBoardID
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code >= fiber.StatusInternalServerError {
			return fiberErr.Code, constant.MessageInternalError
		}
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, constant.MessageInternalError
}

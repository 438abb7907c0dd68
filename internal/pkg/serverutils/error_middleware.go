package serverutils

import (
	"errors"

	"review-agent-be/internal/constant"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors into the JSON envelope.
// Domain sentinels map to their HTTP status; anything unrecognized is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := err.Error()

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, constant.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, constant.ErrConflict):
			status = fiber.StatusConflict
		case errors.Is(err, constant.ErrInvalid):
			status = fiber.StatusBadRequest
		}

		return ctx.Status(status).JSON(ErrorResponse(message))
	}
}

package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IdentityMiddleware resolves the acting user from the X-User-Id header set by
// the fronting gateway. The service itself does no authentication.
func IdentityMiddleware(ctx *fiber.Ctx) error {
	raw := ctx.Get("X-User-Id")
	if raw == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Missing X-User-Id header"))
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid X-User-Id header"))
	}

	ctx.Locals("user_id", userId.String())
	return ctx.Next()
}

// UserId reads the user id stored by IdentityMiddleware.
func UserId(ctx *fiber.Ctx) uuid.UUID {
	raw, _ := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(raw)
	return id
}

package controller

import (
	"strconv"

	"review-agent-be/internal/pkg/serverutils"
	"review-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotifyController interface {
	RegisterRoutes(r fiber.Router)
	Recent(ctx *fiber.Ctx) error
}

type notifyController struct {
	notifyService service.INotifyService
}

func NewNotifyController(notifyService service.INotifyService) INotifyController {
	return &notifyController{
		notifyService: notifyService,
	}
}

func (c *notifyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notify/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Get("recent", c.Recent)
}

func (c *notifyController) Recent(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	limit := 20
	if raw := ctx.Query("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid limit")
		}
		limit = value
	}

	res, err := c.notifyService.Recent(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get recent notifications", res))
}

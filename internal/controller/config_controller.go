package controller

import (
	"review-agent-be/internal/dto"
	"review-agent-be/internal/pkg/serverutils"
	"review-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConfigController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type configController struct {
	configService service.IScheduleConfigService
}

func NewConfigController(configService service.IScheduleConfigService) IConfigController {
	return &configController{
		configService: configService,
	}
}

func (c *configController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/config/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Get("schedule", c.Get)
	h.Put("schedule", c.Update)
}

func (c *configController) Get(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	res, err := c.configService.Get(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get schedule config", res))
}

func (c *configController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	var req dto.UpdateScheduleConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.configService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update schedule config", res))
}

package controller

import (
	"review-agent-be/internal/pkg/serverutils"
	"review-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	GenerateDaily(ctx *fiber.Ctx) error
	GenerateWeekly(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/report/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Post("daily", c.GenerateDaily)
	h.Post("weekly", c.GenerateWeekly)
	h.Get("", c.List)
}

func (c *reportController) GenerateDaily(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	res, err := c.reportService.GenerateDaily(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate daily report", res))
}

func (c *reportController) GenerateWeekly(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	res, err := c.reportService.GenerateWeekly(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate weekly report", res))
}

func (c *reportController) List(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	res, err := c.reportService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list reports", res))
}

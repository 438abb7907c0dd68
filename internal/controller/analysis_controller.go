package controller

import (
	"review-agent-be/internal/dto"
	"review-agent-be/internal/pkg/serverutils"
	"review-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
	ListByFile(ctx *fiber.Ctx) error
	ListByUser(ctx *fiber.Ctx) error
	TagUsage(ctx *fiber.Ctx) error
}

type analysisController struct {
	analysisService service.IAnalysisService
}

func NewAnalysisController(analysisService service.IAnalysisService) IAnalysisController {
	return &analysisController{
		analysisService: analysisService,
	}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analysis/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Post("run", c.Run)
	h.Get("file/:id", c.ListByFile)
	h.Get("tags", c.TagUsage)
	h.Get("", c.ListByUser)
}

func (c *analysisController) Run(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	var req dto.RunAnalysisRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.analysisService.Run(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Analysis accepted", res))
}

func (c *analysisController) ListByFile(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid file id")
	}

	res, err := c.analysisService.ListByFile(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list analysis records", res))
}

func (c *analysisController) TagUsage(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	res, err := c.analysisService.TagUsage(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list tag usage", res))
}

func (c *analysisController) ListByUser(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	res, err := c.analysisService.ListByUser(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list analysis records", res))
}

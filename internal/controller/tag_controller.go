package controller

import (
	"review-agent-be/internal/dto"
	"review-agent-be/internal/pkg/serverutils"
	"review-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITagController interface {
	RegisterRoutes(r fiber.Router)
	GetTree(ctx *fiber.Ctx) error
	CreateMain(ctx *fiber.Ctx) error
	CreateSub(ctx *fiber.Ctx) error
	DeleteMain(ctx *fiber.Ctx) error
	DeleteSub(ctx *fiber.Ctx) error
}

type tagController struct {
	tagService service.ITagService
}

func NewTagController(tagService service.ITagService) ITagController {
	return &tagController{
		tagService: tagService,
	}
}

func (c *tagController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tag/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Get("", c.GetTree)
	h.Post("main", c.CreateMain)
	h.Post("sub", c.CreateSub)
	h.Delete("main/:id", c.DeleteMain)
	h.Delete("sub/:id", c.DeleteSub)
}

func (c *tagController) GetTree(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	res, err := c.tagService.GetTree(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get tag tree", res))
}

func (c *tagController) CreateMain(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	var req dto.CreateMainTagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tagService.CreateMainTag(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create main tag", res))
}

func (c *tagController) CreateSub(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	var req dto.CreateSubTagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tagService.CreateSubTag(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create sub tag", res))
}

func (c *tagController) DeleteMain(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tag id")
	}

	if err := c.tagService.DeleteMainTag(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete main tag", nil))
}

func (c *tagController) DeleteSub(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tag id")
	}

	if err := c.tagService.DeleteSubTag(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete sub tag", nil))
}

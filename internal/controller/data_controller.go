package controller

import (
	"strconv"

	"review-agent-be/internal/dto"
	"review-agent-be/internal/pkg/serverutils"
	"review-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDataController interface {
	RegisterRoutes(r fiber.Router)
	Import(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Sync(ctx *fiber.Ctx) error
}

type dataController struct {
	dataService service.IDataService
}

func NewDataController(dataService service.IDataService) IDataController {
	return &dataController{
		dataService: dataService,
	}
}

func (c *dataController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/data/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Post("file", c.Import)
	h.Get("file", c.List)
	h.Get("file/:id", c.Show)
	h.Post("sync", c.Sync)
}

func (c *dataController) Import(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	var req dto.ImportFileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.dataService.ImportFile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success import file", res))
}

func (c *dataController) List(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	var status *int
	if raw := ctx.Query("status"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid status filter")
		}
		status = &value
	}

	res, err := c.dataService.ListFiles(ctx.Context(), userId, status)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list files", res))
}

func (c *dataController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid file id")
	}

	res, err := c.dataService.ShowFile(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show file", res))
}

func (c *dataController) Sync(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	res, err := c.dataService.SyncDirectory(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success sync directory", res))
}

package controller

import (
	"review-agent-be/internal/pkg/logger"
	"review-agent-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// ILogController exposes the active log file for operational inspection.
type ILogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type logController struct {
	logger logger.ILogger
}

func NewLogController(log logger.ILogger) ILogController {
	return &logController{
		logger: log,
	}
}

func (c *logController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/log/v1")
	h.Use(serverutils.IdentityMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *logController) List(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)
	if limit < 1 || limit > 1000 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list logs", logs))
}

func (c *logController) Show(ctx *fiber.Ctx) error {
	entry, err := c.logger.GetLogById(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "log not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get log", entry))
}

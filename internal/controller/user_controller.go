package controller

import (
	"review-agent-be/internal/dto"
	"review-agent-be/internal/pkg/serverutils"
	"review-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Post("register", c.Register)
	h.Get("me", serverutils.IdentityMiddleware, c.Me)
}

func (c *userController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success register user", res))
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	userId := serverutils.UserId(ctx)

	res, err := c.userService.Show(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get user", res))
}

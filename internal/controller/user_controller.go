package controller

import (
	"notevision-be/internal/pkg/serverutils"
	"notevision-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Me(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	ProfileDetails(ctx *fiber.Ctx) error
}

type userController struct {
	service        service.IUserService
	authMiddleware fiber.Handler
}

func NewUserController(service service.IUserService, authMiddleware fiber.Handler) IUserController {
	return &userController{service: service, authMiddleware: authMiddleware}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users/me")
	h.Use(c.authMiddleware)
	h.Get("", c.Me)
	h.Get("/stats", c.Stats)
	h.Get("/profile-details", c.ProfileDetails)
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	res, err := c.service.Me(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *userController) Stats(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	res, err := c.service.Stats(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}

func (c *userController) ProfileDetails(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	res, err := c.service.ProfileDetails(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile details", res))
}

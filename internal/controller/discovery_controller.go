package controller

import (
	"notevision-be/internal/pkg/serverutils"
	"notevision-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDiscoveryController interface {
	RegisterRoutes(r fiber.Router)
	SearchPublic(ctx *fiber.Ctx) error
}

type discoveryController struct {
	service        service.IDiscoveryService
	authMiddleware fiber.Handler
}

func NewDiscoveryController(service service.IDiscoveryService, authMiddleware fiber.Handler) IDiscoveryController {
	return &discoveryController{service: service, authMiddleware: authMiddleware}
}

func (c *discoveryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notebooks/public")
	h.Use(c.authMiddleware)
	h.Get("/search", c.SearchPublic)
}

func (c *discoveryController) SearchPublic(ctx *fiber.Ctx) error {
	query := ctx.Query("query")

	res, err := c.service.SearchPublic(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search public notebooks", res))
}

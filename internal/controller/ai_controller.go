package controller

import (
	"io"

	"notevision-be/internal/dto"
	"notevision-be/internal/pkg/apperror"
	"notevision-be/internal/pkg/serverutils"
	"notevision-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	Summarize(ctx *fiber.Ctx) error
	ExtractText(ctx *fiber.Ctx) error
}

type aiController struct {
	service        service.IAiService
	authMiddleware fiber.Handler
}

func NewAiController(service service.IAiService, authMiddleware fiber.Handler) IAiController {
	return &aiController{service: service, authMiddleware: authMiddleware}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai")
	h.Use(c.authMiddleware)
	h.Post("/summarize-text", c.Summarize)
	h.Post("/extract-text", c.ExtractText)
}

func (c *aiController) Summarize(ctx *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Summarize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize text", res))
}

func (c *aiController) ExtractText(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperror.InvalidArgument("file upload is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.service.ExtractText(ctx.Context(), fileHeader.Filename, content)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success extract text", res))
}

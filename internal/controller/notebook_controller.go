package controller

import (
	"notevision-be/internal/dto"
	"notevision-be/internal/pkg/serverutils"
	"notevision-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetShared(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Share(ctx *fiber.Ctx) error
	SetVisibility(ctx *fiber.Ctx) error
	UpdateTags(ctx *fiber.Ctx) error
	ToggleLike(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ExportPDF(ctx *fiber.Ctx) error
	GenerateQuiz(ctx *fiber.Ctx) error
}

type notebookController struct {
	service        service.INotebookService
	exportService  service.IExportService
	aiService      service.IAiService
	authMiddleware fiber.Handler
}

func NewNotebookController(
	service service.INotebookService,
	exportService service.IExportService,
	aiService service.IAiService,
	authMiddleware fiber.Handler,
) INotebookController {
	return &notebookController{
		service:        service,
		exportService:  exportService,
		aiService:      aiService,
		authMiddleware: authMiddleware,
	}
}

func (c *notebookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notebooks")
	h.Use(c.authMiddleware)
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	// Fixed paths must register before the :id wildcard.
	h.Get("/shared", c.GetShared)
	h.Get("/:id", c.Show)
	h.Post("/:id/share", c.Share)
	h.Patch("/:id/visibility", c.SetVisibility)
	h.Patch("/:id/tags", c.UpdateTags)
	h.Post("/:id/like", c.ToggleLike)
	h.Get("/:id/pdf", c.ExportPDF)
	h.Post("/:id/quiz", c.GenerateQuiz)
	h.Delete("/:id", c.Delete)
}

func (c *notebookController) Create(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	var req dto.CreateNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), email, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create notebook", res))
}

func (c *notebookController) GetAll(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	res, err := c.service.ListOwned(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all notebooks", res))
}

func (c *notebookController) GetShared(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	res, err := c.service.ListShared(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get shared notebooks", res))
}

func (c *notebookController) Show(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), email, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show notebook", res))
}

func (c *notebookController) Share(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.ShareNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Share(ctx.Context(), email, id, &req); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *notebookController) SetVisibility(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.SetVisibilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetVisibility(ctx.Context(), email, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update visibility", res))
}

func (c *notebookController) UpdateTags(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTagsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateTags(ctx.Context(), email, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update tags", res))
}

func (c *notebookController) ToggleLike(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.ToggleLike(ctx.Context(), email, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle like", res))
}

func (c *notebookController) Delete(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), email, id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *notebookController) ExportPDF(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	data, filename, err := c.exportService.NotebookPDF(ctx.Context(), email, id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(data)
}

func (c *notebookController) GenerateQuiz(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.aiService.GenerateQuiz(ctx.Context(), email, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate quiz", res))
}

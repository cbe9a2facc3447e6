package controller

import (
	"notevision-be/internal/dto"
	"notevision-be/internal/pkg/serverutils"
	"notevision-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	Edit(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Dates(ctx *fiber.Ctx) error
	ByDate(ctx *fiber.Ctx) error
}

type noteController struct {
	service        service.INoteService
	authMiddleware fiber.Handler
}

func NewNoteController(service service.INoteService, authMiddleware fiber.Handler) INoteController {
	return &noteController{service: service, authMiddleware: authMiddleware}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	nb := r.Group("/notebooks", c.authMiddleware)
	nb.Post("/:id/notes", c.Add)
	nb.Put("/:id/notes/:noteId", c.Edit)
	nb.Delete("/:id/notes/:noteId", c.Delete)

	notes := r.Group("/notes", c.authMiddleware)
	notes.Get("/dates", c.Dates)
	notes.Get("/by-date/:date", c.ByDate)
}

func (c *noteController) Add(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	notebookId, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.Context(), email, notebookId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add note", res))
}

func (c *noteController) Edit(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	notebookId, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}
	noteId, err := parseIDParam(ctx, "noteId")
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Edit(ctx.Context(), email, notebookId, noteId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success edit note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)
	notebookId, err := parseIDParam(ctx, "id")
	if err != nil {
		return err
	}
	noteId, err := parseIDParam(ctx, "noteId")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), email, notebookId, noteId); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *noteController) Dates(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	res, err := c.service.NoteDates(ctx.Context(), email)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get note dates", res))
}

func (c *noteController) ByDate(ctx *fiber.Ctx) error {
	email := serverutils.UserEmail(ctx)

	res, err := c.service.NotesByDate(ctx.Context(), email, ctx.Params("date"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get notes by date", res))
}

package controller

import (
	"notevision-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseIDParam rejects malformed path IDs before any lookup happens.
func parseIDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.InvalidArgument("invalid " + name + " format")
	}
	return id, nil
}

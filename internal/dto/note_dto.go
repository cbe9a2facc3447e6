package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

type UpdateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

type NoteResponse struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

package dto

import (
	"time"

	"notevision-be/internal/entity"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Name string `json:"name" validate:"required"`
}

type NotebookResponse struct {
	Id         uuid.UUID            `json:"id"`
	Name       string               `json:"name"`
	OwnerEmail string               `json:"owner_email"`
	IsPublic   bool                 `json:"is_public"`
	Tags       []string             `json:"tags"`
	Likes      []string             `json:"likes"`
	AccessList []entity.AccessEntry `json:"access_list"`
	Notes      []NoteResponse       `json:"notes"`
	CreatedAt  time.Time            `json:"created_at"`
}

func ToNotebookResponse(nb *entity.Notebook) *NotebookResponse {
	notes := make([]NoteResponse, 0, len(nb.Notes))
	for _, note := range nb.Notes {
		notes = append(notes, NoteResponse{
			Id:        note.Id,
			Content:   note.Content,
			CreatedAt: note.CreatedAt,
		})
	}
	return &NotebookResponse{
		Id:         nb.Id,
		Name:       nb.Name,
		OwnerEmail: nb.OwnerEmail,
		IsPublic:   nb.IsPublic,
		Tags:       nb.Tags,
		Likes:      nb.Likes,
		AccessList: nb.AccessList,
		Notes:      notes,
		CreatedAt:  nb.CreatedAt,
	}
}

func ToNotebookResponses(notebooks []*entity.Notebook) []*NotebookResponse {
	out := make([]*NotebookResponse, len(notebooks))
	for i, nb := range notebooks {
		out[i] = ToNotebookResponse(nb)
	}
	return out
}

type ShareNotebookRequest struct {
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
	Permission     string `json:"permission" validate:"required,oneof=view edit"`
}

type SetVisibilityRequest struct {
	IsPublic *bool `json:"is_public" validate:"required"`
}

type UpdateTagsRequest struct {
	Tags []string `json:"tags" validate:"required"`
}

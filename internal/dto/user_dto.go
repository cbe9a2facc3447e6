package dto

import (
	"notevision-be/internal/entity"
	"notevision-be/pkg/aggregate"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// SharedByInfo lists a notebook the caller shared out, with its recipients.
type SharedByInfo struct {
	Id         uuid.UUID            `json:"id"`
	Name       string               `json:"name"`
	SharedWith []entity.AccessEntry `json:"shared_with"`
}

// SharedWithInfo lists a notebook shared to the caller, with the caller's
// own resolved permission.
type SharedWithInfo struct {
	Id         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	OwnerEmail string            `json:"owner_email"`
	Permission entity.Permission `json:"permission"`
}

type PublicNotebookLikes struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	LikeCount int       `json:"like_count"`
}

type ProfileDetailsResponse struct {
	Email                   string                `json:"email"`
	Name                    string                `json:"name"`
	Stats                   aggregate.Stats       `json:"stats"`
	NotebooksSharedByUser   []SharedByInfo        `json:"notebooks_shared_by_user"`
	NotebooksSharedWithUser []SharedWithInfo      `json:"notebooks_shared_with_user"`
	PublicNotebooksLikes    []PublicNotebookLikes `json:"public_notebooks_likes"`
}

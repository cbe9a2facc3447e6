package service

import (
	"context"
	"encoding/json"
	"time"

	"notevision-be/internal/dto"
	"notevision-be/internal/entity"
	"notevision-be/internal/pkg/apperror"
	"notevision-be/internal/pkg/logger"
	"notevision-be/internal/repository/specification"
	"notevision-be/internal/repository/unitofwork"
	"notevision-be/pkg/access"

	"github.com/google/uuid"
)

type INotebookService interface {
	Create(ctx context.Context, ownerEmail string, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	ListOwned(ctx context.Context, email string) ([]*dto.NotebookResponse, error)
	ListShared(ctx context.Context, email string) ([]*dto.NotebookResponse, error)
	Show(ctx context.Context, email string, id uuid.UUID) (*dto.NotebookResponse, error)
	Share(ctx context.Context, ownerEmail string, id uuid.UUID, req *dto.ShareNotebookRequest) error
	SetVisibility(ctx context.Context, email string, id uuid.UUID, req *dto.SetVisibilityRequest) (*dto.NotebookResponse, error)
	UpdateTags(ctx context.Context, email string, id uuid.UUID, req *dto.UpdateTagsRequest) (*dto.NotebookResponse, error)
	ToggleLike(ctx context.Context, email string, id uuid.UUID) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, email string, id uuid.UUID) error
}

type notebookService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewNotebookService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) INotebookService {
	return &notebookService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (c *notebookService) Create(ctx context.Context, ownerEmail string, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook := &entity.Notebook{
		Id:         uuid.New(),
		Name:       req.Name,
		OwnerEmail: ownerEmail,
		IsPublic:   false,
		Notes:      []entity.Note{},
		AccessList: []entity.AccessEntry{},
		Tags:       []string{},
		Likes:      []string{},
		CreatedAt:  time.Now(),
	}

	if err := uow.NotebookRepository().Create(ctx, notebook); err != nil {
		return nil, err
	}

	return dto.ToNotebookResponse(notebook), nil
}

func (c *notebookService) ListOwned(ctx context.Context, email string) ([]*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.OwnedBy{OwnerEmail: email},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return dto.ToNotebookResponses(notebooks), nil
}

func (c *notebookService) ListShared(ctx context.Context, email string) ([]*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.NotOwnedBy{OwnerEmail: email},
		specification.AccessListContains{UserEmail: email},
	)
	if err != nil {
		return nil, err
	}

	return dto.ToNotebookResponses(notebooks), nil
}

func (c *notebookService) Show(ctx context.Context, email string, id uuid.UUID) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}

	if decision := access.Evaluate(notebook, email, entity.PermissionView); !decision.Allowed {
		if decision.Reason == access.DenyNotFound {
			return nil, apperror.NotFound("notebook not found")
		}
		return nil, apperror.Forbidden("access denied to this notebook")
	}

	return dto.ToNotebookResponse(notebook), nil
}

func (c *notebookService) Share(ctx context.Context, ownerEmail string, id uuid.UUID, req *dto.ShareNotebookRequest) error {
	if ownerEmail == req.RecipientEmail {
		return apperror.InvalidArgument("cannot share with yourself")
	}

	permission := entity.Permission(req.Permission)
	if !permission.Valid() {
		return apperror.InvalidArgument("permission must be view or edit")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	recipient, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.RecipientEmail})
	if err != nil {
		return err
	}
	if recipient == nil {
		return apperror.NotFound("recipient user not found")
	}

	// Only the owner may share, so the lookup filters on ownership directly.
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{OwnerEmail: ownerEmail},
	)
	if err != nil {
		return err
	}
	if notebook == nil {
		return apperror.NotFound("notebook not found or you are not the owner")
	}

	notebook.Grant(req.RecipientEmail, permission)

	if err := uow.NotebookRepository().Save(ctx, notebook); err != nil {
		return err
	}

	msg := dto.NotebookSharedMessage{
		NotebookId:     notebook.Id.String(),
		NotebookName:   notebook.Name,
		OwnerEmail:     ownerEmail,
		RecipientEmail: req.RecipientEmail,
		Permission:     string(permission),
	}
	msgJson, _ := json.Marshal(msg)
	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		// The grant is already persisted; the notification is best effort.
		c.logger.Warn("NotebookService", "Failed to publish share event", map[string]interface{}{
			"notebook_id": notebook.Id.String(),
			"error":       err.Error(),
		})
	}

	return nil
}

func (c *notebookService) SetVisibility(ctx context.Context, email string, id uuid.UUID, req *dto.SetVisibilityRequest) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := c.findOwned(ctx, uow, email, id, "only the owner can change visibility")
	if err != nil {
		return nil, err
	}

	notebook.IsPublic = *req.IsPublic

	if err := uow.NotebookRepository().Save(ctx, notebook); err != nil {
		return nil, err
	}

	return dto.ToNotebookResponse(notebook), nil
}

func (c *notebookService) UpdateTags(ctx context.Context, email string, id uuid.UUID, req *dto.UpdateTagsRequest) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := c.findOwned(ctx, uow, email, id, "only the owner can update tags")
	if err != nil {
		return nil, err
	}

	notebook.Tags = entity.NormalizeTags(req.Tags)

	if err := uow.NotebookRepository().Save(ctx, notebook); err != nil {
		return nil, err
	}

	return dto.ToNotebookResponse(notebook), nil
}

func (c *notebookService) ToggleLike(ctx context.Context, email string, id uuid.UUID) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Likes only exist on public notebooks; a private one is invisible here
	// even to users holding a grant.
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.IsPublic{},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, apperror.NotFound("public notebook not found")
	}

	notebook.ToggleLike(email)

	if err := uow.NotebookRepository().Save(ctx, notebook); err != nil {
		return nil, err
	}

	return dto.ToNotebookResponse(notebook), nil
}

func (c *notebookService) Delete(ctx context.Context, email string, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := c.findOwned(ctx, uow, email, id, "you can only delete your own notebooks")
	if err != nil {
		return err
	}

	return uow.NotebookRepository().Delete(ctx, notebook.Id)
}

// findOwned loads the notebook and enforces ownership, distinguishing a
// missing notebook (404) from someone else's (403).
func (c *notebookService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, email string, id uuid.UUID, denyMessage string) (*entity.Notebook, error) {
	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, apperror.NotFound("notebook not found")
	}
	if notebook.OwnerEmail != email {
		return nil, apperror.Forbidden(denyMessage)
	}
	return notebook, nil
}

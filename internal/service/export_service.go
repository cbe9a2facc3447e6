package service

import (
	"context"

	"notevision-be/internal/entity"
	"notevision-be/internal/pkg/apperror"
	"notevision-be/internal/repository/specification"
	"notevision-be/internal/repository/unitofwork"
	"notevision-be/pkg/access"
	"notevision-be/pkg/pdfexport"

	"github.com/google/uuid"
)

type IExportService interface {
	NotebookPDF(ctx context.Context, email string, notebookId uuid.UUID) (data []byte, filename string, err error)
}

type exportService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewExportService(uowFactory unitofwork.RepositoryFactory) IExportService {
	return &exportService{
		uowFactory: uowFactory,
	}
}

func (c *exportService) NotebookPDF(ctx context.Context, email string, notebookId uuid.UUID) ([]byte, string, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: notebookId})
	if err != nil {
		return nil, "", err
	}
	if decision := access.Evaluate(notebook, email, entity.PermissionView); !decision.Allowed {
		if decision.Reason == access.DenyNotFound {
			return nil, "", apperror.NotFound("notebook not found")
		}
		return nil, "", apperror.Forbidden("access denied to this notebook")
	}

	data, err := pdfexport.Render(notebook, email)
	if err != nil {
		return nil, "", err
	}

	return data, pdfexport.Filename(notebook.Name), nil
}

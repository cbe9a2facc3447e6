package service

import (
	"context"
	"time"

	"notevision-be/internal/dto"
	"notevision-be/internal/entity"
	"notevision-be/internal/pkg/apperror"
	"notevision-be/internal/repository/specification"
	"notevision-be/internal/repository/unitofwork"
	"notevision-be/pkg/access"
	"notevision-be/pkg/aggregate"

	"github.com/google/uuid"
)

type INoteService interface {
	Add(ctx context.Context, email string, notebookId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Edit(ctx context.Context, email string, notebookId, noteId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, email string, notebookId, noteId uuid.UUID) error
	NoteDates(ctx context.Context, email string) ([]string, error)
	NotesByDate(ctx context.Context, email string, dateStr string) ([]*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

// findEditable loads the notebook and enforces edit access for email.
func (c *noteService) findEditable(ctx context.Context, uow unitofwork.UnitOfWork, email string, notebookId uuid.UUID) (*entity.Notebook, error) {
	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: notebookId})
	if err != nil {
		return nil, err
	}

	if decision := access.Evaluate(notebook, email, entity.PermissionEdit); !decision.Allowed {
		if decision.Reason == access.DenyNotFound {
			return nil, apperror.NotFound("notebook not found")
		}
		return nil, apperror.Forbidden("you do not have permission to modify notes in this notebook")
	}

	return notebook, nil
}

func (c *noteService) Add(ctx context.Context, email string, notebookId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := c.findEditable(ctx, uow, email, notebookId)
	if err != nil {
		return nil, err
	}

	note := entity.Note{
		Id:        uuid.New(),
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	notebook.AppendNote(note)

	if err := uow.NotebookRepository().Save(ctx, notebook); err != nil {
		return nil, err
	}

	return &dto.NoteResponse{Id: note.Id, Content: note.Content, CreatedAt: note.CreatedAt}, nil
}

func (c *noteService) Edit(ctx context.Context, email string, notebookId, noteId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := c.findEditable(ctx, uow, email, notebookId)
	if err != nil {
		return nil, err
	}

	note := notebook.FindNote(noteId)
	if note == nil {
		return nil, apperror.NotFound("note not found within the specified notebook")
	}
	note.Content = req.Content

	if err := uow.NotebookRepository().Save(ctx, notebook); err != nil {
		return nil, err
	}

	return &dto.NoteResponse{Id: note.Id, Content: note.Content, CreatedAt: note.CreatedAt}, nil
}

func (c *noteService) Delete(ctx context.Context, email string, notebookId, noteId uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := c.findEditable(ctx, uow, email, notebookId)
	if err != nil {
		return err
	}

	// Deleting an absent note still succeeds: the note being gone is the
	// goal, and a retried delete must not surface an error.
	if removed := notebook.RemoveNote(noteId); !removed {
		return nil
	}

	return uow.NotebookRepository().Save(ctx, notebook)
}

func (c *noteService) NoteDates(ctx context.Context, email string) ([]string, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx, specification.OwnedBy{OwnerEmail: email})
	if err != nil {
		return nil, err
	}

	return aggregate.NoteDates(notebooks), nil
}

func (c *noteService) NotesByDate(ctx context.Context, email string, dateStr string) ([]*dto.NoteResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		return nil, apperror.InvalidArgument("invalid date format, use YYYY-MM-DD")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx, specification.OwnedBy{OwnerEmail: email})
	if err != nil {
		return nil, err
	}

	notes := aggregate.NotesOn(notebooks, day)
	out := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		out[i] = &dto.NoteResponse{Id: note.Id, Content: note.Content, CreatedAt: note.CreatedAt}
	}
	return out, nil
}

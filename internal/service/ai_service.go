package service

import (
	"context"
	"errors"
	"strings"

	"notevision-be/internal/dto"
	"notevision-be/internal/entity"
	"notevision-be/internal/pkg/apperror"
	"notevision-be/internal/repository/specification"
	"notevision-be/internal/repository/unitofwork"
	"notevision-be/pkg/access"
	"notevision-be/pkg/chatbot"
	"notevision-be/pkg/ocr"

	"github.com/google/uuid"
)

// quizMinContentLength is the least amount of combined note text worth
// sending to the model. Below it the questions come back useless.
const quizMinContentLength = 50

type IAiService interface {
	Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
	GenerateQuiz(ctx context.Context, email string, notebookId uuid.UUID) (*dto.QuizResponse, error)
	ExtractText(ctx context.Context, filename string, content []byte) (*dto.ExtractTextResponse, error)
}

type aiService struct {
	uowFactory unitofwork.RepositoryFactory
	gemini     *chatbot.GeminiClient
	ocrClient  *ocr.Client
}

func NewAiService(
	uowFactory unitofwork.RepositoryFactory,
	gemini *chatbot.GeminiClient,
	ocrClient *ocr.Client,
) IAiService {
	return &aiService{
		uowFactory: uowFactory,
		gemini:     gemini,
		ocrClient:  ocrClient,
	}
}

func (c *aiService) Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperror.InvalidArgument("no text provided")
	}
	if c.gemini == nil {
		return nil, apperror.ServiceUnavailable("AI service not configured", nil)
	}

	summary, err := c.gemini.GenerateSummary(ctx, req.Text)
	if err != nil {
		return nil, apperror.ServiceUnavailable("AI summarization failed", err)
	}

	return &dto.SummarizeResponse{Summary: summary}, nil
}

func (c *aiService) GenerateQuiz(ctx context.Context, email string, notebookId uuid.UUID) (*dto.QuizResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: notebookId})
	if err != nil {
		return nil, err
	}
	if decision := access.Evaluate(notebook, email, entity.PermissionView); !decision.Allowed {
		if decision.Reason == access.DenyNotFound {
			return nil, apperror.NotFound("notebook not found")
		}
		return nil, apperror.Forbidden("access denied to this notebook")
	}

	if len(notebook.Notes) == 0 {
		return nil, apperror.InvalidArgument("no notes to generate quiz from")
	}

	parts := make([]string, 0, len(notebook.Notes))
	for _, note := range notebook.Notes {
		parts = append(parts, note.Content)
	}
	fullText := strings.Join(parts, "\n\n---\n\n")
	if len(fullText) < quizMinContentLength {
		return nil, apperror.InvalidArgument("not enough content for quiz")
	}

	if c.gemini == nil {
		return nil, apperror.ServiceUnavailable("AI service not configured", nil)
	}

	questions, err := c.gemini.GenerateQuiz(ctx, fullText)
	if err != nil {
		// The model answered but with an unusable shape, or it never
		// answered at all. Clients see 502 for the former, 503 for the latter.
		if errors.Is(err, chatbot.ErrUnexpectedFormat) {
			return nil, apperror.UpstreamFormat("AI response format error", err)
		}
		return nil, apperror.ServiceUnavailable("AI quiz generation failed", err)
	}

	out := make([]dto.QuizQuestion, len(questions))
	for i, q := range questions {
		out[i] = dto.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return &dto.QuizResponse{Questions: out}, nil
}

func (c *aiService) ExtractText(ctx context.Context, filename string, content []byte) (*dto.ExtractTextResponse, error) {
	if len(content) == 0 {
		return nil, apperror.InvalidArgument("empty file")
	}
	if c.ocrClient == nil {
		return nil, apperror.ServiceUnavailable("OCR service not configured", nil)
	}

	text, err := c.ocrClient.ExtractText(ctx, filename, content)
	if err != nil {
		return nil, apperror.ServiceUnavailable("OCR processing failed", err)
	}

	return &dto.ExtractTextResponse{Filename: filename, ExtractedText: text}, nil
}

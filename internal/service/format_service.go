package service

import (
	"context"
	"fmt"
	"strings"

	"bulletin-board-be/internal/constant"
	"bulletin-board-be/internal/dto"
	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/pkg/logger"
	"bulletin-board-be/internal/repository/unitofwork"
	"bulletin-board-be/pkg/events"
	"bulletin-board-be/pkg/llm"
)

type IFormatService interface {
	Format(ctx context.Context, req *dto.FormatNoteRequest) (*dto.FormatNoteResponse, error)
}

type formatService struct {
	uowFactory     unitofwork.RepositoryFactory
	llmProvider    llm.LLMProvider
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewFormatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	eventPublisher events.Publisher,
	logger logger.ILogger,
) IFormatService {
	return &formatService{
		uowFactory:     uowFactory,
		llmProvider:    llmProvider,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func BuildFormatPrompt(text, format string) string {
	return fmt.Sprintf(constant.FormatNotePrompt, format, text)
}

// Format asks the generation service to restyle text and stores the trimmed
// result as the note's text. No other column is touched. Any generation
// failure is reported as ErrGenerationFailed and leaves the note unchanged.
func (c *formatService) Format(ctx context.Context, req *dto.FormatNoteRequest) (*dto.FormatNoteResponse, error) {
	prompt := BuildFormatPrompt(req.Text, req.Format)

	completion, err := c.llmProvider.Generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("format", "generation request failed", map[string]interface{}{
			"note_id": req.NoteId,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	formatted := strings.TrimSpace(completion)

	uow := c.uowFactory.NewUnitOfWork(ctx)
	affected, err := uow.NoteRepository().UpdateText(ctx, req.NoteId, formatted)
	if err != nil {
		return nil, fmt.Errorf("store formatted text for note %d: %w", req.NoteId, err)
	}
	if affected == 0 {
		c.logger.Warn("format", "formatted text not stored, note does not exist", map[string]interface{}{
			"note_id": req.NoteId,
		})
	} else {
		publishActivity(ctx, c.eventPublisher, c.logger, events.NoteFormatted, map[string]interface{}{
			"note_id": req.NoteId,
			"format":  req.Format,
		})
	}

	return &dto.FormatNoteResponse{Formatted: formatted}, nil
}

package service

import (
	"context"
	"fmt"

	"bulletin-board-be/internal/constant"
	"bulletin-board-be/internal/dto"
	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/pkg/logger"
	"bulletin-board-be/internal/repository/specification"
	"bulletin-board-be/internal/repository/unitofwork"
	"bulletin-board-be/pkg/events"
)

type INoteService interface {
	GetByBoard(ctx context.Context, boardId int64) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (dto.NoteWriteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (dto.NoteWriteResponse, error)
	Delete(ctx context.Context, id int64) error
}

type noteService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher events.Publisher,
	logger logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// applyNoteFields copies fields onto note, substituting defaults for omitted ones.
func applyNoteFields(note *entity.Note, fields dto.NoteFields) {
	note.Text = constant.DefaultNoteText
	if fields.Text != nil {
		note.Text = *fields.Text
	}
	note.X = constant.DefaultNoteX
	if fields.X != nil {
		note.X = *fields.X
	}
	note.Y = constant.DefaultNoteY
	if fields.Y != nil {
		note.Y = *fields.Y
	}
	note.Color = constant.DefaultNoteColor
	if fields.Color != nil {
		note.Color = *fields.Color
	}
	note.Height = constant.DefaultNoteHeight
	if fields.Height != nil {
		note.Height = *fields.Height
	}
	note.Tags = fields.Tags
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.NoteResponse{
		Id:      note.Id,
		Text:    note.Text,
		X:       note.X,
		Y:       note.Y,
		Color:   note.Color,
		Height:  note.Height,
		BoardId: note.BoardId,
		Tags:    tags,
	}
}

func (c *noteService) GetByBoard(ctx context.Context, boardId int64) ([]*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByBoardID{BoardID: boardId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, fmt.Errorf("list notes of board %d: %w", boardId, err)
	}
	if len(notes) == 0 {
		return []*dto.NoteResponse{}, nil
	}

	ids := make([]int64, len(notes))
	for i, note := range notes {
		ids[i] = note.Id
	}

	// One join for every note on the board instead of a query per note.
	tagsByNote, err := uow.NoteTagRepository().FindTagNamesByNoteIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list tags of board %d: %w", boardId, err)
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		if tags, ok := tagsByNote[note.Id]; ok {
			note.Tags = tags
		}
		result = append(result, toNoteResponse(note))
	}
	return result, nil
}

// attachTags associates each name with the note, creating missing tags.
func attachTags(ctx context.Context, uow unitofwork.UnitOfWork, noteId int64, names []string) error {
	for _, name := range names {
		tag, err := uow.TagRepository().FindOrCreate(ctx, name)
		if err != nil {
			return err
		}
		if err := uow.NoteTagRepository().Create(ctx, noteId, tag.Id); err != nil {
			return fmt.Errorf("associate tag %q with note %d: %w", name, noteId, err)
		}
	}
	return nil
}

func ensureBoardExists(ctx context.Context, uow unitofwork.UnitOfWork, boardId int64) error {
	board, err := uow.BoardRepository().FindOne(ctx, specification.ByID{ID: boardId})
	if err != nil {
		return fmt.Errorf("find board %d: %w", boardId, err)
	}
	if board == nil {
		return entity.ErrBoardNotFound
	}
	return nil
}

// Create inserts the note and its tag associations in one transaction. The
// response echoes the request body merged with the new id, not the stored row.
func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (dto.NoteWriteResponse, error) {
	if req.BoardId == nil || *req.BoardId == 0 {
		return nil, entity.ErrBoardIDRequired
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := ensureBoardExists(ctx, uow, *req.BoardId); err != nil {
		return nil, err
	}

	note := entity.Note{BoardId: req.BoardId}
	applyNoteFields(&note, req.NoteFields)

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	if err := attachTags(ctx, uow, note.Id, note.Tags); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishActivity(ctx, c.eventPublisher, c.logger, events.NoteCreated, map[string]interface{}{
		"note_id":  note.Id,
		"board_id": *req.BoardId,
	})

	return dto.NewNoteWriteResponse(note.Id, req.Body), nil
}

// Update replaces every scalar field and the whole tag set. An absent or null
// board_id is stored as-is; a supplied one must name an existing board.
func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (dto.NoteWriteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, fmt.Errorf("find note %d: %w", req.Id, err)
	}
	if existing == nil {
		return nil, entity.ErrNoteNotFound
	}

	if req.BoardId != nil {
		if err := ensureBoardExists(ctx, uow, *req.BoardId); err != nil {
			return nil, err
		}
	}

	note := entity.Note{Id: req.Id, BoardId: req.BoardId}
	applyNoteFields(&note, req.NoteFields)

	if err := uow.NoteRepository().Update(ctx, &note); err != nil {
		return nil, fmt.Errorf("update note %d: %w", req.Id, err)
	}
	if err := uow.NoteTagRepository().DeleteByNoteID(ctx, req.Id); err != nil {
		return nil, fmt.Errorf("clear tags of note %d: %w", req.Id, err)
	}
	if err := attachTags(ctx, uow, req.Id, note.Tags); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishActivity(ctx, c.eventPublisher, c.logger, events.NoteUpdated, map[string]interface{}{
		"note_id":  req.Id,
		"board_id": req.BoardId,
	})

	return dto.NewNoteWriteResponse(req.Id, req.Body), nil
}

// Delete removes the note's tag associations and then the note. Unknown ids are a no-op.
func (c *noteService) Delete(ctx context.Context, id int64) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteTagRepository().DeleteByNoteID(ctx, id); err != nil {
		return fmt.Errorf("clear tags of note %d: %w", id, err)
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	publishActivity(ctx, c.eventPublisher, c.logger, events.NoteDeleted, map[string]interface{}{
		"note_id": id,
	})

	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"bulletin-board-be/internal/constant"
	"bulletin-board-be/internal/dto"
	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/pkg/logger"
	"bulletin-board-be/internal/repository/specification"
	"bulletin-board-be/internal/repository/unitofwork"
	"bulletin-board-be/pkg/events"
)

type IBoardService interface {
	GetAll(ctx context.Context) ([]*dto.BoardResponse, error)
	Create(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	Show(ctx context.Context, id int64) (*dto.BoardResponse, error)
	Rename(ctx context.Context, req *dto.RenameBoardRequest) (*dto.BoardResponse, error)
	Delete(ctx context.Context, id int64) error
}

type boardService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewBoardService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher events.Publisher,
	logger logger.ILogger,
) IBoardService {
	return &boardService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func toBoardResponse(board *entity.Board) *dto.BoardResponse {
	return &dto.BoardResponse{
		Id:   board.Id,
		Name: board.Name,
	}
}

func (c *boardService) GetAll(ctx context.Context) ([]*dto.BoardResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	boards, err := uow.BoardRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	result := make([]*dto.BoardResponse, 0, len(boards))
	for _, board := range boards {
		result = append(result, toBoardResponse(board))
	}
	return result, nil
}

func (c *boardService) Create(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	name := constant.DefaultBoardName
	if req.Name != nil {
		name = *req.Name
	}

	board := entity.Board{Name: name}
	if err := uow.BoardRepository().Create(ctx, &board); err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}

	publishActivity(ctx, c.eventPublisher, c.logger, events.BoardCreated, map[string]interface{}{
		"board_id": board.Id,
		"name":     board.Name,
	})

	return toBoardResponse(&board), nil
}

func (c *boardService) Show(ctx context.Context, id int64) (*dto.BoardResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	board, err := uow.BoardRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find board %d: %w", id, err)
	}
	if board == nil {
		return nil, entity.ErrBoardNotFound
	}

	return toBoardResponse(board), nil
}

// Rename stores the trimmed name. Callers reject blank names before this point.
func (c *boardService) Rename(ctx context.Context, req *dto.RenameBoardRequest) (*dto.BoardResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	board, err := uow.BoardRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, fmt.Errorf("find board %d: %w", req.Id, err)
	}
	if board == nil {
		return nil, entity.ErrBoardNotFound
	}

	board.Name = strings.TrimSpace(req.Name)
	if err := uow.BoardRepository().Update(ctx, board); err != nil {
		return nil, fmt.Errorf("rename board %d: %w", req.Id, err)
	}

	publishActivity(ctx, c.eventPublisher, c.logger, events.BoardRenamed, map[string]interface{}{
		"board_id": board.Id,
		"name":     board.Name,
	})

	return toBoardResponse(board), nil
}

// Delete removes the board's tag associations, then its notes, then the
// board itself, all in one transaction. Deleting an unknown id is a no-op.
func (c *boardService) Delete(ctx context.Context, id int64) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	notes, err := uow.NoteRepository().FindAll(ctx, specification.ByBoardID{BoardID: id})
	if err != nil {
		return fmt.Errorf("list notes of board %d: %w", id, err)
	}

	noteIds := make([]int64, 0, len(notes))
	for _, note := range notes {
		noteIds = append(noteIds, note.Id)
	}

	if err := uow.NoteTagRepository().DeleteByNoteIDs(ctx, noteIds); err != nil {
		return fmt.Errorf("delete tag associations of board %d: %w", id, err)
	}
	if err := uow.NoteRepository().DeleteByIDs(ctx, noteIds); err != nil {
		return fmt.Errorf("delete notes of board %d: %w", id, err)
	}
	if err := uow.BoardRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete board %d: %w", id, err)
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	publishActivity(ctx, c.eventPublisher, c.logger, events.BoardDeleted, map[string]interface{}{
		"board_id": id,
		"note_ids": noteIds,
	})

	return nil
}

package contract

import (
	"context"

	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/repository/specification"
)

type BoardRepository interface {
	Create(ctx context.Context, board *entity.Board) error
	Update(ctx context.Context, board *entity.Board) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Board, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Board, error)
}

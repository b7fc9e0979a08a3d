package contract

import (
	"context"

	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	// UpdateText touches only the text column and reports how many rows matched.
	UpdateText(ctx context.Context, id int64, text string) (int64, error)
	Delete(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
}

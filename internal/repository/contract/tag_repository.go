package contract

import (
	"context"

	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/repository/specification"
)

type TagRepository interface {
	// FindOrCreate returns the tag with exactly this name, inserting it on a miss.
	// Concurrent callers with the same name converge on a single row.
	FindOrCreate(ctx context.Context, name string) (*entity.Tag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

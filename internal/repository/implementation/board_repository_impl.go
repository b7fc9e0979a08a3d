package implementation

import (
	"context"
	"errors"

	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/mapper"
	"bulletin-board-be/internal/model"
	"bulletin-board-be/internal/repository/contract"
	"bulletin-board-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BoardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BoardMapper
}

func NewBoardRepository(db *gorm.DB) contract.BoardRepository {
	return &BoardRepositoryImpl{
		db:     db,
		mapper: mapper.NewBoardMapper(),
	}
}

func (r *BoardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BoardRepositoryImpl) Create(ctx context.Context, board *entity.Board) error {
	m := r.mapper.ToModel(board)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*board = *r.mapper.ToEntity(m)
	return nil
}

func (r *BoardRepositoryImpl) Update(ctx context.Context, board *entity.Board) error {
	m := r.mapper.ToModel(board)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*board = *r.mapper.ToEntity(m)
	return nil
}

func (r *BoardRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Board{}, id).Error
}

func (r *BoardRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Board, error) {
	var m model.Board
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BoardRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Board, error) {
	var models []*model.Board
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

package implementation

import (
	"context"
	"errors"
	"fmt"

	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/mapper"
	"bulletin-board-be/internal/model"
	"bulletin-board-be/internal/repository/contract"
	"bulletin-board-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagMapper
}

func NewTagRepository(db *gorm.DB) contract.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagMapper(),
	}
}

func (r *TagRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TagRepositoryImpl) findByName(ctx context.Context, name string) (*model.Tag, error) {
	var m model.Tag
	err := specification.ByName{Name: name}.Apply(r.db.WithContext(ctx)).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *TagRepositoryImpl) FindOrCreate(ctx context.Context, name string) (*entity.Tag, error) {
	existing, err := r.findByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find tag %q: %w", name, err)
	}
	if existing != nil {
		return r.mapper.ToEntity(existing), nil
	}

	// The unique index on name decides the winner; a losing insert is a no-op
	// and the row created by the other writer is read back.
	m := model.Tag{Name: name}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&m)
	if result.Error != nil {
		return nil, fmt.Errorf("insert tag %q: %w", name, result.Error)
	}
	if result.RowsAffected > 0 && m.Id != 0 {
		return r.mapper.ToEntity(&m), nil
	}

	existing, err = r.findByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("refetch tag %q: %w", name, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("tag %q vanished after conflicting insert", name)
	}
	return r.mapper.ToEntity(existing), nil
}

func (r *TagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	var models []*model.Tag
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TagRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Tag{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

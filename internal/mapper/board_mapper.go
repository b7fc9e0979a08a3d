package mapper

import (
	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/model"
)

type BoardMapper struct{}

func NewBoardMapper() *BoardMapper {
	return &BoardMapper{}
}

func (m *BoardMapper) ToEntity(b *model.Board) *entity.Board {
	if b == nil {
		return nil
	}
	return &entity.Board{
		Id:   b.Id,
		Name: b.Name,
	}
}

func (m *BoardMapper) ToModel(b *entity.Board) *model.Board {
	if b == nil {
		return nil
	}
	return &model.Board{
		Id:   b.Id,
		Name: b.Name,
	}
}

func (m *BoardMapper) ToEntities(boards []*model.Board) []*entity.Board {
	entities := make([]*entity.Board, len(boards))
	for i, b := range boards {
		entities[i] = m.ToEntity(b)
	}
	return entities
}

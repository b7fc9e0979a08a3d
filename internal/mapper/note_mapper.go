package mapper

import (
	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

// ToEntity leaves Tags empty; tags live in a separate table and are attached by the service.
func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:      n.Id,
		Text:    n.Text,
		X:       n.X,
		Y:       n.Y,
		Color:   n.Color,
		Height:  n.Height,
		BoardId: n.BoardId,
		Tags:    []string{},
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:      n.Id,
		Text:    n.Text,
		X:       n.X,
		Y:       n.Y,
		Color:   n.Color,
		Height:  n.Height,
		BoardId: n.BoardId,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

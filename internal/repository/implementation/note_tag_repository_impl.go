package implementation

import (
	"context"

	"bulletin-board-be/internal/model"
	"bulletin-board-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteTagRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteTagRepository(db *gorm.DB) contract.NoteTagRepository {
	return &NoteTagRepositoryImpl{db: db}
}

// Create is idempotent: associating the same pair twice keeps one row.
func (r *NoteTagRepositoryImpl) Create(ctx context.Context, noteId, tagId int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.NoteTag{NoteId: noteId, TagId: tagId}).Error
}

func (r *NoteTagRepositoryImpl) DeleteByNoteID(ctx context.Context, noteId int64) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteTag{}).Error
}

func (r *NoteTagRepositoryImpl) DeleteByNoteIDs(ctx context.Context, noteIds []int64) error {
	if len(noteIds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("note_id IN ?", noteIds).Delete(&model.NoteTag{}).Error
}

type noteTagNameRow struct {
	NoteId int64
	Name   string
}

func (r *NoteTagRepositoryImpl) FindTagNamesByNoteIDs(ctx context.Context, noteIds []int64) (map[int64][]string, error) {
	result := make(map[int64][]string, len(noteIds))
	if len(noteIds) == 0 {
		return result, nil
	}

	var rows []noteTagNameRow
	err := r.db.WithContext(ctx).
		Table("note_tags").
		Select("note_tags.note_id AS note_id, tags.name AS name").
		Joins("JOIN tags ON tags.id = note_tags.tag_id").
		Where("note_tags.note_id IN ?", noteIds).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.NoteId] = append(result[row.NoteId], row.Name)
	}
	return result, nil
}

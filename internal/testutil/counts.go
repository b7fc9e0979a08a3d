package testutil

import (
	"testing"

	"bulletin-board-be/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CountNoteTags counts association rows belonging to the given notes.
func CountNoteTags(t *testing.T, db *gorm.DB, noteIds ...int64) int64 {
	t.Helper()
	if len(noteIds) == 0 {
		return 0
	}
	var count int64
	require.NoError(t, db.Model(&model.NoteTag{}).Where("note_id IN ?", noteIds).Count(&count).Error)
	return count
}

// CountTagsNamed counts tag rows with exactly this name.
func CountTagsNamed(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.Tag{}).Where("name = ?", name).Count(&count).Error)
	return count
}

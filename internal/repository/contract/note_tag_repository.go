package contract

import "context"

type NoteTagRepository interface {
	Create(ctx context.Context, noteId, tagId int64) error
	DeleteByNoteID(ctx context.Context, noteId int64) error
	DeleteByNoteIDs(ctx context.Context, noteIds []int64) error
	// FindTagNamesByNoteIDs groups tag names by note id in one query.
	FindTagNamesByNoteIDs(ctx context.Context, noteIds []int64) (map[int64][]string, error)
}

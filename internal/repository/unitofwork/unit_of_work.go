package unitofwork

import (
	"context"

	"bulletin-board-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one request. Between Begin and
// Commit/Rollback every accessor is bound to the open transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BoardRepository() contract.BoardRepository
	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
	NoteTagRepository() contract.NoteTagRepository
}

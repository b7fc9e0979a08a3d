package unitofwork_test

import (
	"context"
	"testing"

	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/repository/unitofwork"
	"bulletin-board-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWorkRollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(testutil.NewTestDB(t))

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.BoardRepository().Create(ctx, &entity.Board{Name: "temp"}))
	require.NoError(t, uow.Rollback())

	boards, err := factory.NewUnitOfWork(ctx).BoardRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestUnitOfWorkCommitPersists(t *testing.T) {
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(testutil.NewTestDB(t))

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	assert.ErrorIs(t, uow.Begin(ctx), unitofwork.ErrTxAlreadyStarted)
	require.NoError(t, uow.BoardRepository().Create(ctx, &entity.Board{Name: "kept"}))
	require.NoError(t, uow.Commit())

	// Deferred rollbacks after a commit are harmless.
	assert.ErrorIs(t, uow.Rollback(), unitofwork.ErrNoTransaction)

	boards, err := factory.NewUnitOfWork(ctx).BoardRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "kept", boards[0].Name)
}

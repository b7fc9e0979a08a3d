package testutil

import (
	"context"
	"fmt"
	"testing"

	"bulletin-board-be/internal/model"
	"bulletin-board-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB opens a private in-memory SQLite database with the schema applied.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.NewGormDB(ctx, database.GormConfig{
		Driver:          database.DriverSQLite,
		DSN:             fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel:        "silent",
		ConnectAttempts: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db, model.All()...))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

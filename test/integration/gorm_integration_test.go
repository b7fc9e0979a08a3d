package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"bulletin-board-be/internal/dto"
	"bulletin-board-be/internal/model"
	"bulletin-board-be/internal/pkg/logger"
	"bulletin-board-be/internal/repository/unitofwork"
	"bulletin-board-be/internal/service"
	"bulletin-board-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresBoardFlow(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" || os.Getenv("DB_DRIVER") == database.DriverSQLite {
		t.Skip("Skipping integration test: postgres DB_CONNECTION_STRING not set")
	}

	ctx := context.Background()
	gormDB, err := database.NewGormDB(ctx, database.GormConfig{
		Driver:          database.DriverPostgres,
		DSN:             dsn,
		LogLevel:        "warn",
		ConnectAttempts: 3,
	})
	require.NoError(t, err)
	defer database.Close(gormDB)

	require.NoError(t, database.Migrate(ctx, gormDB, model.All()...))

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	boards := service.NewBoardService(uowFactory, nil, logger.NewNopLogger())
	notes := service.NewNoteService(uowFactory, nil, logger.NewNopLogger())

	name := "integration-" + uuid.NewString()
	board, err := boards.Create(ctx, &dto.CreateBoardRequest{Name: &name})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, boards.Delete(ctx, board.Id))
	}()

	// A tag name unique to this run exercises the insert path of find-or-create.
	tag := "tag-" + uuid.NewString()
	for i := 0; i < 2; i++ {
		_, err := notes.Create(ctx, &dto.CreateNoteRequest{
			BoardId:    &board.Id,
			NoteFields: dto.NoteFields{Tags: []string{tag, tag}},
		})
		require.NoError(t, err)
	}

	listed, err := notes.GetByBoard(ctx, board.Id)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, n := range listed {
		assert.Equal(t, []string{tag}, n.Tags)
	}
}

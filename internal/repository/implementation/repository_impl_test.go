package implementation_test

import (
	"context"
	"testing"

	"bulletin-board-be/internal/entity"
	"bulletin-board-be/internal/repository/implementation"
	"bulletin-board-be/internal/repository/specification"
	"bulletin-board-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBoardRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := implementation.NewBoardRepository(testutil.NewTestDB(t))

	board := entity.Board{Name: "Ideas"}
	require.NoError(t, repo.Create(ctx, &board))
	assert.NotZero(t, board.Id)

	board.Name = "Plans"
	require.NoError(t, repo.Update(ctx, &board))

	found, err := repo.FindOne(ctx, specification.ByID{ID: board.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Plans", found.Name)

	require.NoError(t, repo.Delete(ctx, board.Id))

	found, err = repo.FindOne(ctx, specification.ByID{ID: board.Id})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestNoteRepositoryUpdateTextTouchesOnlyText(t *testing.T) {
	ctx := context.Background()
	repo := implementation.NewNoteRepository(testutil.NewTestDB(t))

	boardId := int64(7)
	note := entity.Note{Text: "draft", X: 0, Y: 12.5, Color: "#000000", Height: 40, BoardId: &boardId}
	require.NoError(t, repo.Create(ctx, &note))

	affected, err := repo.UpdateText(ctx, note.Id, "final")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	found, err := repo.FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "final", found.Text)
	assert.Equal(t, 0.0, found.X)
	assert.Equal(t, 12.5, found.Y)
	assert.Equal(t, "#000000", found.Color)
	assert.Equal(t, 40.0, found.Height)
	require.NotNil(t, found.BoardId)
	assert.Equal(t, boardId, *found.BoardId)

	affected, err = repo.UpdateText(ctx, note.Id+100, "nobody")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestNoteRepositoryFindAllByBoard(t *testing.T) {
	ctx := context.Background()
	repo := implementation.NewNoteRepository(testutil.NewTestDB(t))

	one, two := int64(1), int64(2)
	for _, boardId := range []*int64{&one, &two, &one, nil} {
		require.NoError(t, repo.Create(ctx, &entity.Note{Text: "n", BoardId: boardId}))
	}

	notes, err := repo.FindAll(ctx, specification.ByBoardID{BoardID: one}, specification.OrderBy{Field: "id"})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Less(t, notes[0].Id, notes[1].Id)
	for _, n := range notes {
		assert.Equal(t, []string{}, n.Tags)
	}
}

func TestTagRepositoryFindOrCreateReusesRows(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := implementation.NewTagRepository(db)

	first, err := repo.FindOrCreate(ctx, "urgent")
	require.NoError(t, err)
	second, err := repo.FindOrCreate(ctx, "urgent")
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)

	// Names are matched exactly.
	other, err := repo.FindOrCreate(ctx, "Urgent")
	require.NoError(t, err)
	assert.NotEqual(t, first.Id, other.Id)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestTagRepositoryFindOrCreateConvergesOnConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := implementation.NewTagRepository(db)

	// Another writer inserts the same name after the lookup missed but
	// before this insert reaches the database.
	var raced bool
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:racing_tag_insert", func(tx *gorm.DB) {
		if raced || tx.Statement.Schema == nil || tx.Statement.Schema.Table != "tags" {
			return
		}
		raced = true
		_, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context, "INSERT INTO tags (name) VALUES (?)", "racy")
		if err != nil {
			_ = tx.AddError(err)
		}
	}))

	tag, err := repo.FindOrCreate(ctx, "racy")
	require.NoError(t, err)
	require.True(t, raced)

	assert.EqualValues(t, 1, testutil.CountTagsNamed(t, db, "racy"))
	stored, err := repo.FindAll(ctx, specification.ByName{Name: "racy"})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, stored[0].Id, tag.Id)
	assert.Equal(t, "racy", tag.Name)
}

func TestNoteTagRepositoryGroupsNamesByNote(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	tags := implementation.NewTagRepository(db)
	noteTags := implementation.NewNoteTagRepository(db)

	a, err := tags.FindOrCreate(ctx, "a")
	require.NoError(t, err)
	b, err := tags.FindOrCreate(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, noteTags.Create(ctx, 1, a.Id))
	require.NoError(t, noteTags.Create(ctx, 1, b.Id))
	require.NoError(t, noteTags.Create(ctx, 1, b.Id)) // duplicate pair is ignored
	require.NoError(t, noteTags.Create(ctx, 2, a.Id))

	assert.EqualValues(t, 3, testutil.CountNoteTags(t, db, 1, 2))

	grouped, err := noteTags.FindTagNamesByNoteIDs(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, grouped[1])
	assert.Equal(t, []string{"a"}, grouped[2])
	assert.NotContains(t, grouped, int64(3))

	require.NoError(t, noteTags.DeleteByNoteID(ctx, 1))
	assert.Zero(t, testutil.CountNoteTags(t, db, 1))

	empty, err := noteTags.FindTagNamesByNoteIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

package genres

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/prabinsunar/library-app/internal/database"
	"github.com/prabinsunar/library-app/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "genres.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB), db.DB
}

func TestRepository_ListOrderedByName(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"Poetry", "Fantasy", "Science Fiction"} {
		require.NoError(t, repo.Create(ctx, &entities.Genre{Name: name}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Fantasy", list[0].Name)
	assert.Equal(t, "Poetry", list[1].Name)
	assert.Equal(t, "Science Fiction", list[2].Name)
}

func TestRepository_FindByName(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	genre := &entities.Genre{Name: "Fantasy"}
	require.NoError(t, repo.Create(ctx, genre))

	found, err := repo.FindByName(ctx, "Fantasy")
	require.NoError(t, err)
	assert.Equal(t, genre.ID, found.ID)

	_, err = repo.FindByName(ctx, "fantasy")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, _ := setupTestDB(t)
	ctx := context.Background()

	genre := &entities.Genre{Name: "Fantsy"}
	require.NoError(t, repo.Create(ctx, genre))
	require.NoError(t, repo.Update(ctx, &entities.Genre{ID: genre.ID, Name: "Fantasy"}))

	got, err := repo.GetByID(ctx, genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", got.Name)

	err = repo.Update(ctx, &entities.Genre{ID: "missing", Name: "Poetry"})
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestRepository_DeleteIfUnreferenced(t *testing.T) {
	repo, db := setupTestDB(t)
	ctx := context.Background()

	used := &entities.Genre{Name: "Fantasy"}
	unused := &entities.Genre{Name: "Poetry"}
	require.NoError(t, repo.Create(ctx, used))
	require.NoError(t, repo.Create(ctx, unused))
	require.NoError(t, db.Create(&entities.BookGenre{BookID: "book-1", GenreID: used.ID}).Error)

	deleted, err := repo.DeleteIfUnreferenced(ctx, used.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.DeleteIfUnreferenced(ctx, unused.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, unused.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/repository"
)

func TestPostgresCategoryRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	categoryRepo := repository.NewPostgresCategoryRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("insert fills created_at", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")

		category := &domain.Category{ID: uuid.New().String(), Title: "Go", Text: "About Go", Slug: "go"}
		require.NoError(t, categoryRepo.Insert(ctx, category))

		assert.False(t, category.CreatedAt.IsZero())
	})

	t.Run("lookup by id and slug", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")

		category := &domain.Category{ID: uuid.New().String(), Title: "Go", Slug: "go"}
		require.NoError(t, categoryRepo.Insert(ctx, category))

		byID, err := categoryRepo.GetByID(ctx, category.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "go", byID.Slug)

		bySlug, err := categoryRepo.GetBySlug(ctx, "go")
		require.NoError(t, err)
		require.NotNil(t, bySlug)
		assert.Equal(t, category.ID, bySlug.ID)
	})

	t.Run("missing category yields nil, not an error", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")

		category, err := categoryRepo.GetBySlug(ctx, "nope")

		require.NoError(t, err)
		assert.Nil(t, category)
	})

	t.Run("duplicate slug is rejected by the store", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")

		require.NoError(t, categoryRepo.Insert(ctx, &domain.Category{ID: uuid.New().String(), Title: "Go", Slug: "go"}))

		err := categoryRepo.Insert(ctx, &domain.Category{ID: uuid.New().String(), Title: "Golang", Slug: "go"})
		assert.Error(t, err)
	})

	t.Run("list orders by title", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")

		require.NoError(t, categoryRepo.Insert(ctx, &domain.Category{ID: uuid.New().String(), Title: "Zen", Slug: "zen"}))
		require.NoError(t, categoryRepo.Insert(ctx, &domain.Category{ID: uuid.New().String(), Title: "Art", Slug: "art"}))

		categories, err := categoryRepo.List(ctx)

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Art", categories[0].Title)
		assert.Equal(t, "Zen", categories[1].Title)
	})
}

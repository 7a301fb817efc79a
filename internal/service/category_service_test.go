package service_test

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/mocks"
	"github.com/pkonnov/myblog/internal/service"
	"github.com/pkonnov/myblog/internal/validator"
)

func newCategoryService(t *testing.T) (*service.CategoryService, *mocks.MockCategoryRepository) {
	mockCategories := mocks.NewMockCategoryRepository(t)
	return service.NewCategoryService(mockCategories, validator.NewValidator()), mockCategories
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all categories", func(t *testing.T) {
		svc, mockCategories := newCategoryService(t)

		mockCategories.EXPECT().
			List(mock.Anything).
			Return([]domain.Category{{ID: "c1", Slug: "go"}, {ID: "c2", Slug: "life"}}, nil)

		categories, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Len(t, categories, 2)
	})

	t.Run("empty store yields an empty slice, not nil", func(t *testing.T) {
		svc, mockCategories := newCategoryService(t)

		mockCategories.EXPECT().List(mock.Anything).Return(nil, nil)

		categories, err := svc.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, categories)
		assert.Empty(t, categories)
	})
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()
	input := domain.CategoryInput{Title: "Go", Text: "Articles about Go", Slug: "go"}

	t.Run("requires authentication", func(t *testing.T) {
		svc, _ := newCategoryService(t)

		_, err := svc.Create(ctx, nil, input)

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("non-admin gets not found", func(t *testing.T) {
		svc, _ := newCategoryService(t)

		_, err := svc.Create(ctx, &domain.Viewer{Username: "mod", Role: domain.RoleModerator}, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects a malformed slug", func(t *testing.T) {
		svc, _ := newCategoryService(t)

		_, err := svc.Create(ctx, &domain.Viewer{Username: "root", Role: domain.RoleAdmin},
			domain.CategoryInput{Title: "Go", Slug: "Bad Slug"})

		require.Error(t, err)
		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "slug")
	})

	t.Run("rejects a duplicate slug", func(t *testing.T) {
		svc, mockCategories := newCategoryService(t)

		mockCategories.EXPECT().
			GetBySlug(mock.Anything, "go").
			Return(&domain.Category{ID: "c1", Slug: "go"}, nil)

		_, err := svc.Create(ctx, &domain.Viewer{Username: "root", Role: domain.RoleAdmin}, input)

		require.Error(t, err)
		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "slug")
	})

	t.Run("admin creates a category", func(t *testing.T) {
		svc, mockCategories := newCategoryService(t)

		mockCategories.EXPECT().GetBySlug(mock.Anything, "go").Return(nil, nil)
		mockCategories.EXPECT().
			Insert(mock.Anything, mock.AnythingOfType("*domain.Category")).
			Return(nil)

		category, err := svc.Create(ctx, &domain.Viewer{Username: "root", Role: domain.RoleAdmin}, input)

		require.NoError(t, err)
		assert.NotEmpty(t, category.ID)
		assert.Equal(t, "go", category.Slug)
	})
}

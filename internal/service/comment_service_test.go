package service_test

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/mocks"
	"github.com/pkonnov/myblog/internal/service"
	"github.com/pkonnov/myblog/internal/validator"
)

func newCommentService(t *testing.T) (*service.CommentService, *mocks.MockCommentRepository, *mocks.MockArticleRepository) {
	mockComments := mocks.NewMockCommentRepository(t)
	mockArticles := mocks.NewMockArticleRepository(t)

	svc := service.NewCommentService(mockComments, mockArticles, validator.NewValidator())
	svc.SetClock(func() time.Time { return testNow })
	return svc, mockComments, mockArticles
}

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	input := domain.CommentInput{AuthorName: "visitor", Body: "great post"}

	t.Run("anonymous visitor comments on a published article", func(t *testing.T) {
		svc, mockComments, mockArticles := newCommentService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(publishedArticle("alice"), nil)
		mockComments.EXPECT().
			Insert(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Return(nil)

		comment, err := svc.Create(ctx, "a1", nil, input)

		require.NoError(t, err)
		assert.NotEmpty(t, comment.ID)
		assert.Equal(t, "a1", comment.ArticleID)
		assert.Equal(t, "visitor", comment.AuthorName)
		assert.False(t, comment.Approved)
		assert.Equal(t, testNow, comment.CreatedAt)
	})

	t.Run("commenting on a hidden draft reports not found", func(t *testing.T) {
		svc, _, mockArticles := newCommentService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(draftArticle("alice"), nil)

		_, err := svc.Create(ctx, "a1", &domain.Viewer{Username: "bob", Role: domain.RoleUser}, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing article reports not found", func(t *testing.T) {
		svc, _, mockArticles := newCommentService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "nope").Return(nil, nil)

		_, err := svc.Create(ctx, "nope", nil, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects invalid input with field errors", func(t *testing.T) {
		svc, _, mockArticles := newCommentService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(publishedArticle("alice"), nil)

		_, err := svc.Create(ctx, "a1", nil, domain.CommentInput{AuthorName: "visitor"})

		require.Error(t, err)
		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "body")
	})
}

func TestCommentService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("requires authentication", func(t *testing.T) {
		svc, _, _ := newCommentService(t)

		err := svc.Approve(ctx, "cm1", nil)

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("regular user gets not found", func(t *testing.T) {
		svc, _, _ := newCommentService(t)

		err := svc.Approve(ctx, "cm1", &domain.Viewer{Username: "bob", Role: domain.RoleUser})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("moderator approves a comment", func(t *testing.T) {
		svc, mockComments, _ := newCommentService(t)

		mockComments.EXPECT().
			GetByID(mock.Anything, "cm1").
			Return(&domain.Comment{ID: "cm1", ArticleID: "a1"}, nil)
		mockComments.EXPECT().Approve(mock.Anything, "cm1").Return(nil)

		err := svc.Approve(ctx, "cm1", &domain.Viewer{Username: "mod", Role: domain.RoleModerator})

		assert.NoError(t, err)
	})

	t.Run("missing comment reports not found", func(t *testing.T) {
		svc, mockComments, _ := newCommentService(t)

		mockComments.EXPECT().GetByID(mock.Anything, "nope").Return(nil, nil)

		err := svc.Approve(ctx, "nope", &domain.Viewer{Username: "mod", Role: domain.RoleModerator})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("regular user gets not found", func(t *testing.T) {
		svc, _, _ := newCommentService(t)

		err := svc.Delete(ctx, "cm1", &domain.Viewer{Username: "bob", Role: domain.RoleUser})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("admin deletes a comment", func(t *testing.T) {
		svc, mockComments, _ := newCommentService(t)

		mockComments.EXPECT().
			GetByID(mock.Anything, "cm1").
			Return(&domain.Comment{ID: "cm1", ArticleID: "a1"}, nil)
		mockComments.EXPECT().Delete(mock.Anything, "cm1").Return(nil)

		err := svc.Delete(ctx, "cm1", &domain.Viewer{Username: "root", Role: domain.RoleAdmin})

		assert.NoError(t, err)
	})
}

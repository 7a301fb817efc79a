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

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newArticleService(t *testing.T) (*service.ArticleService, *mocks.MockArticleRepository, *mocks.MockCommentRepository, *mocks.MockCategoryRepository, *mocks.MockUserRepository) {
	mockArticles := mocks.NewMockArticleRepository(t)
	mockComments := mocks.NewMockCommentRepository(t)
	mockCategories := mocks.NewMockCategoryRepository(t)
	mockUsers := mocks.NewMockUserRepository(t)

	svc := service.NewArticleService(mockArticles, mockComments, mockCategories, mockUsers, validator.NewValidator())
	svc.SetClock(func() time.Time { return testNow })
	return svc, mockArticles, mockComments, mockCategories, mockUsers
}

func publishedArticle(author string) *domain.Article {
	published := testNow.Add(-24 * time.Hour)
	return &domain.Article{
		ID:            "a1",
		AuthorID:      "u1",
		AuthorName:    author,
		CategoryID:    "c1",
		CategorySlug:  "go",
		CategoryTitle: "Go",
		Title:         "Hello",
		Body:          "**bold** body",
		PublishedAt:   &published,
		CreatedAt:     published,
		UpdatedAt:     published,
	}
}

func draftArticle(author string) *domain.Article {
	a := publishedArticle(author)
	a.PublishedAt = nil
	return a
}

func TestArticleService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty search term short-circuits to an unavailable page", func(t *testing.T) {
		svc, _, _, _, _ := newArticleService(t)

		page, err := svc.List(ctx, service.ListArticlesRequest{
			Mode:       domain.ListSearch,
			SearchTerm: "   ",
			RawPage:    "3",
		})

		require.NoError(t, err)
		assert.True(t, page.Unavailable())
		assert.Equal(t, 0, page.TotalItems)
		assert.Equal(t, 1, page.PageNumber)
		assert.Empty(t, page.Items)
	})

	t.Run("non-numeric page falls back to page one", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().
			Count(mock.Anything, mock.AnythingOfType("domain.ArticleQuery")).
			Return(9, nil)
		mockArticles.EXPECT().
			List(mock.Anything, mock.AnythingOfType("domain.ArticleQuery"), domain.PageSize, 0).
			Return([]domain.ArticleSummary{{ID: "a1", Title: "Hello", Body: "body"}}, nil)

		page, err := svc.List(ctx, service.ListArticlesRequest{Mode: domain.ListAll, RawPage: "abc"})

		require.NoError(t, err)
		assert.Equal(t, 1, page.PageNumber)
		assert.Equal(t, 3, page.TotalPages)
		assert.False(t, page.HasPrevious)
		assert.True(t, page.HasNext)
	})

	t.Run("page past the end is clamped to the last page", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().
			Count(mock.Anything, mock.AnythingOfType("domain.ArticleQuery")).
			Return(10, nil)
		// 10 items at 4 per page puts the last page at 3, offset 8.
		mockArticles.EXPECT().
			List(mock.Anything, mock.AnythingOfType("domain.ArticleQuery"), domain.PageSize, 8).
			Return([]domain.ArticleSummary{{ID: "a9"}, {ID: "a10"}}, nil)

		page, err := svc.List(ctx, service.ListArticlesRequest{Mode: domain.ListAll, RawPage: "999"})

		require.NoError(t, err)
		assert.Equal(t, 3, page.PageNumber)
		assert.Equal(t, 9, page.StartIndex)
		assert.Equal(t, 10, page.EndIndex)
		assert.True(t, page.HasPrevious)
		assert.False(t, page.HasNext)
	})

	t.Run("empty listing is a valid single page", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().
			Count(mock.Anything, mock.AnythingOfType("domain.ArticleQuery")).
			Return(0, nil)
		mockArticles.EXPECT().
			List(mock.Anything, mock.AnythingOfType("domain.ArticleQuery"), domain.PageSize, 0).
			Return(nil, nil)

		page, err := svc.List(ctx, service.ListArticlesRequest{Mode: domain.ListByCategory, CategorySlug: "empty"})

		require.NoError(t, err)
		assert.True(t, page.Unavailable())
		assert.Equal(t, 0, page.StartIndex)
		assert.Equal(t, 0, page.EndIndex)
		assert.NotNil(t, page.Items)
	})

	t.Run("fills the preview from the article body", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().
			Count(mock.Anything, mock.AnythingOfType("domain.ArticleQuery")).
			Return(1, nil)
		mockArticles.EXPECT().
			List(mock.Anything, mock.AnythingOfType("domain.ArticleQuery"), domain.PageSize, 0).
			Return([]domain.ArticleSummary{{ID: "a1", Body: "**bold** text"}}, nil)

		page, err := svc.List(ctx, service.ListArticlesRequest{Mode: domain.ListAll})

		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "bold text", page.Items[0].Preview)
	})

	t.Run("drafts listing requires authentication", func(t *testing.T) {
		svc, _, _, _, _ := newArticleService(t)

		_, err := svc.List(ctx, service.ListArticlesRequest{Mode: domain.ListDrafts})

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("drafts listing is scoped to the viewer", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().
			Count(mock.Anything, mock.MatchedBy(func(q domain.ArticleQuery) bool {
				return q.Mode == domain.ListDrafts && q.Owner == "alice"
			})).
			Return(1, nil)
		mockArticles.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(q domain.ArticleQuery) bool {
				return q.Owner == "alice"
			}), domain.PageSize, 0).
			Return([]domain.ArticleSummary{{ID: "d1"}}, nil)

		page, err := svc.List(ctx, service.ListArticlesRequest{
			Mode:   domain.ListDrafts,
			Viewer: &domain.Viewer{Username: "alice", Role: domain.RoleUser},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalItems)
	})
}

func TestArticleService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a published article with its comments", func(t *testing.T) {
		svc, mockArticles, mockComments, _, _ := newArticleService(t)

		article := publishedArticle("alice")
		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(article, nil)
		mockComments.EXPECT().
			ListForArticle(mock.Anything, "a1", testNow).
			Return([]domain.Comment{{ID: "cm1", ArticleID: "a1", Body: "nice"}}, nil)

		detail, err := svc.Get(ctx, "a1", nil)

		require.NoError(t, err)
		assert.Equal(t, "Hello", detail.Article.Title)
		assert.Contains(t, detail.BodyHTML, "<strong>bold</strong>")
		assert.Len(t, detail.Comments, 1)
	})

	t.Run("missing article reports not found", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "nope").Return(nil, nil)

		_, err := svc.Get(ctx, "nope", nil)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("someone else's draft reports not found", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(draftArticle("alice"), nil)

		_, err := svc.Get(ctx, "a1", &domain.Viewer{Username: "bob", Role: domain.RoleUser})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("author sees their own draft", func(t *testing.T) {
		svc, mockArticles, mockComments, _, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(draftArticle("alice"), nil)
		mockComments.EXPECT().
			ListForArticle(mock.Anything, "a1", testNow).
			Return(nil, nil)

		detail, err := svc.Get(ctx, "a1", &domain.Viewer{Username: "alice", Role: domain.RoleUser})

		require.NoError(t, err)
		assert.True(t, detail.Article.IsDraft())
		assert.NotNil(t, detail.Comments)
	})

	t.Run("scheduled article is hidden until its publish time", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		article := publishedArticle("alice")
		future := testNow.Add(time.Hour)
		article.PublishedAt = &future
		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(article, nil)

		_, err := svc.Get(ctx, "a1", &domain.Viewer{Username: "bob", Role: domain.RoleUser})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestArticleService_Create(t *testing.T) {
	ctx := context.Background()
	input := domain.ArticleInput{Title: "New post", CategoryID: "c1", Body: "text"}

	t.Run("requires authentication", func(t *testing.T) {
		svc, _, _, _, _ := newArticleService(t)

		_, err := svc.Create(ctx, nil, input)

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("rejects invalid input with field errors", func(t *testing.T) {
		svc, _, _, _, _ := newArticleService(t)

		_, err := svc.Create(ctx, &domain.Viewer{Username: "alice"}, domain.ArticleInput{CategoryID: "c1"})

		require.Error(t, err)
		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "title")
		assert.Contains(t, verrs, "body")
	})

	t.Run("unknown category is a field error", func(t *testing.T) {
		svc, _, _, mockCategories, _ := newArticleService(t)

		mockCategories.EXPECT().GetByID(mock.Anything, "c1").Return(nil, nil)

		_, err := svc.Create(ctx, &domain.Viewer{Username: "alice"}, input)

		require.Error(t, err)
		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "category_id")
	})

	t.Run("forces the author to the viewer and stores a draft", func(t *testing.T) {
		svc, mockArticles, _, mockCategories, mockUsers := newArticleService(t)

		mockCategories.EXPECT().
			GetByID(mock.Anything, "c1").
			Return(&domain.Category{ID: "c1", Slug: "go", Title: "Go"}, nil)
		mockUsers.EXPECT().
			Ensure(mock.Anything, "alice").
			Return(&domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}, nil)
		mockArticles.EXPECT().
			Insert(mock.Anything, mock.AnythingOfType("*domain.Article")).
			Return(nil)

		article, err := svc.Create(ctx, &domain.Viewer{Username: "alice", Role: domain.RoleUser}, input)

		require.NoError(t, err)
		assert.NotEmpty(t, article.ID)
		assert.Equal(t, "alice", article.AuthorName)
		assert.Equal(t, "u1", article.AuthorID)
		assert.Nil(t, article.PublishedAt)
		assert.Equal(t, testNow, article.CreatedAt)
	})
}

func TestArticleService_Update(t *testing.T) {
	ctx := context.Background()
	input := domain.ArticleInput{Title: "Edited", CategoryID: "c2", Body: "new text"}

	t.Run("requires authentication", func(t *testing.T) {
		svc, _, _, _, _ := newArticleService(t)

		_, err := svc.Update(ctx, "a1", nil, input)

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(publishedArticle("alice"), nil)

		_, err := svc.Update(ctx, "a1", &domain.Viewer{Username: "bob", Role: domain.RoleUser}, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("admins hold no edit rights over foreign articles", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(publishedArticle("alice"), nil)

		_, err := svc.Update(ctx, "a1", &domain.Viewer{Username: "root", Role: domain.RoleAdmin}, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner updates title, body, and category", func(t *testing.T) {
		svc, mockArticles, _, mockCategories, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(publishedArticle("alice"), nil)
		mockCategories.EXPECT().
			GetByID(mock.Anything, "c2").
			Return(&domain.Category{ID: "c2", Slug: "life", Title: "Life"}, nil)
		mockArticles.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
				return a.Title == "Edited" && a.CategoryID == "c2" && a.UpdatedAt.Equal(testNow)
			})).
			Return(nil)

		article, err := svc.Update(ctx, "a1", &domain.Viewer{Username: "alice", Role: domain.RoleUser}, input)

		require.NoError(t, err)
		assert.Equal(t, "Edited", article.Title)
		assert.Equal(t, "life", article.CategorySlug)
	})
}

func TestArticleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("requires authentication", func(t *testing.T) {
		svc, _, _, _, _ := newArticleService(t)

		err := svc.Delete(ctx, "a1", nil)

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(publishedArticle("alice"), nil)

		err := svc.Delete(ctx, "a1", &domain.Viewer{Username: "bob", Role: domain.RoleUser})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner deletes the article", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(publishedArticle("alice"), nil)
		mockArticles.EXPECT().Delete(mock.Anything, "a1").Return(nil)

		err := svc.Delete(ctx, "a1", &domain.Viewer{Username: "alice", Role: domain.RoleUser})

		assert.NoError(t, err)
	})
}

func TestArticleService_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps a draft with the current time", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(draftArticle("alice"), nil)
		mockArticles.EXPECT().SetPublishedAt(mock.Anything, "a1", testNow).Return(nil)

		article, err := svc.Publish(ctx, "a1", &domain.Viewer{Username: "alice", Role: domain.RoleUser})

		require.NoError(t, err)
		require.NotNil(t, article.PublishedAt)
		assert.True(t, article.PublishedAt.Equal(testNow))
	})

	t.Run("republishing refreshes the timestamp", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(publishedArticle("alice"), nil)
		mockArticles.EXPECT().SetPublishedAt(mock.Anything, "a1", testNow).Return(nil)

		article, err := svc.Publish(ctx, "a1", &domain.Viewer{Username: "alice", Role: domain.RoleUser})

		require.NoError(t, err)
		assert.True(t, article.PublishedAt.Equal(testNow))
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		svc, mockArticles, _, _, _ := newArticleService(t)

		mockArticles.EXPECT().GetByID(mock.Anything, "a1").Return(draftArticle("alice"), nil)

		_, err := svc.Publish(ctx, "a1", &domain.Viewer{Username: "bob", Role: domain.RoleUser})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

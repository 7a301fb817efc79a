package repository

import (
	"context"
	"time"

	"github.com/pkonnov/myblog/internal/domain"
)

// Lookup methods return (nil, nil) when no row matches; callers decide
// whether absence is an error.

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Ensure upserts the row mirroring the given identity and returns it.
	Ensure(ctx context.Context, username string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	Insert(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	Insert(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	SetPublishedAt(ctx context.Context, id string, publishedAt time.Time) error
	// Delete removes the article and its comments in one transaction.
	Delete(ctx context.Context, id string) error
	// Count returns the size of the full result for a query.
	Count(ctx context.Context, q domain.ArticleQuery) (int, error)
	// List returns one window of the ordered result for a query.
	List(ctx context.Context, q domain.ArticleQuery, limit, offset int) ([]domain.ArticleSummary, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Insert(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	// ListForArticle returns the article's comments with created_at <= now,
	// oldest first.
	ListForArticle(ctx context.Context, articleID string, now time.Time) ([]domain.Comment, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

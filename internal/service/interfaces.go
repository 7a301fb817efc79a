package service

import (
	"context"
	"time"

	"github.com/pkonnov/myblog/internal/domain"
)

// ListArticlesRequest selects a listing mode, its filter value, and the
// requested page. RawPage is the untrusted page parameter exactly as it
// arrived; the service interprets it forgivingly.
type ListArticlesRequest struct {
	Mode         domain.ListMode
	CategorySlug string
	Author       string
	Year         int
	Month        time.Month
	Day          int
	SearchTerm   string
	RawPage      string
	Viewer       *domain.Viewer
}

// ArticleDetail is an article plus the data its detail page needs.
type ArticleDetail struct {
	Article  domain.Article   `json:"article"`
	BodyHTML string           `json:"body_html"`
	Comments []domain.Comment `json:"comments"`
}

// ArticleServiceInterface defines the article operations exposed to
// handlers. Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// List runs one paginated listing query.
	List(ctx context.Context, req ListArticlesRequest) (domain.Page[domain.ArticleSummary], error)
	// Get fetches one article if the viewer may see it.
	Get(ctx context.Context, id string, viewer *domain.Viewer) (*ArticleDetail, error)
	// Create stores a new draft authored by the viewer.
	Create(ctx context.Context, viewer *domain.Viewer, input domain.ArticleInput) (*domain.Article, error)
	// Update saves the mutable fields of the viewer's own article.
	Update(ctx context.Context, id string, viewer *domain.Viewer, input domain.ArticleInput) (*domain.Article, error)
	// Delete removes the viewer's own article and its comments.
	Delete(ctx context.Context, id string, viewer *domain.Viewer) error
	// Publish stamps the article with the current time.
	Publish(ctx context.Context, id string, viewer *domain.Viewer) (*domain.Article, error)
}

// CommentServiceInterface defines the comment operations exposed to
// handlers.
type CommentServiceInterface interface {
	// Create attaches a visitor comment to a visible article.
	Create(ctx context.Context, articleID string, viewer *domain.Viewer, input domain.CommentInput) (*domain.Comment, error)
	// Approve marks a comment approved; moderators only.
	Approve(ctx context.Context, id string, viewer *domain.Viewer) error
	// Delete removes a comment; moderators only.
	Delete(ctx context.Context, id string, viewer *domain.Viewer) error
}

// CategoryServiceInterface defines the category operations exposed to
// handlers.
type CategoryServiceInterface interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, viewer *domain.Viewer, input domain.CategoryInput) (*domain.Category, error)
}

// FeedServiceInterface renders the public RSS feed.
type FeedServiceInterface interface {
	Build(ctx context.Context) (string, error)
}

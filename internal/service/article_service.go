package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/logger"
	"github.com/pkonnov/myblog/internal/metrics"
	"github.com/pkonnov/myblog/internal/policy"
	"github.com/pkonnov/myblog/internal/render"
	"github.com/pkonnov/myblog/internal/repository"
	"github.com/pkonnov/myblog/internal/validator"
)

// ArticleService implements the article listing and mutation operations on
// top of the repositories and the visibility policy.
type ArticleService struct {
	articles   repository.ArticleRepository
	comments   repository.CommentRepository
	categories repository.CategoryRepository
	users      repository.UserRepository
	validator  *validator.Validator

	// now is swappable so publication cutoffs are testable.
	now func() time.Time
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	articles repository.ArticleRepository,
	comments repository.CommentRepository,
	categories repository.CategoryRepository,
	users repository.UserRepository,
	v *validator.Validator,
) *ArticleService {
	return &ArticleService{
		articles:   articles,
		comments:   comments,
		categories: categories,
		users:      users,
		validator:  v,
		now:        time.Now,
	}
}

// SetClock overrides the service clock. Tests only.
func (s *ArticleService) SetClock(now func() time.Time) {
	s.now = now
}

// List runs one paginated listing query. A page request that is missing or
// non-numeric serves page 1; one past the end serves the last page. An
// empty result is a valid page, not an error.
func (s *ArticleService) List(ctx context.Context, req ListArticlesRequest) (domain.Page[domain.ArticleSummary], error) {
	var empty domain.Page[domain.ArticleSummary]

	if req.Mode == domain.ListDrafts && req.Viewer == nil {
		return empty, domain.ErrUnauthenticated
	}

	// Searching with nothing entered means "nothing found", not "no
	// filter"; it never reaches the store.
	if req.Mode == domain.ListSearch && strings.TrimSpace(req.SearchTerm) == "" {
		return domain.NewPage[domain.ArticleSummary](nil, 0, 1), nil
	}

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.ListingDuration.WithLabelValues(string(req.Mode)))

	q := domain.ArticleQuery{
		Mode:         req.Mode,
		CategorySlug: req.CategorySlug,
		Author:       req.Author,
		Year:         req.Year,
		Month:        req.Month,
		Day:          req.Day,
		SearchTerm:   req.SearchTerm,
		Now:          s.now(),
	}
	if req.Mode == domain.ListDrafts {
		q.Owner = req.Viewer.Username
	}

	total, err := s.articles.Count(ctx, q)
	if err != nil {
		return empty, fmt.Errorf("count listing: %w", err)
	}

	page := domain.ClampPage(domain.ParsePageNumber(req.RawPage), total)

	items, err := s.articles.List(ctx, q, domain.PageSize, domain.PageOffset(page))
	if err != nil {
		return empty, fmt.Errorf("list articles: %w", err)
	}
	for i := range items {
		items[i].Preview = render.Preview(items[i].Body)
	}

	return domain.NewPage(items, total, page), nil
}

// Get fetches one article with its comments. A missing article, a foreign
// draft, and a not-yet-published article all surface as ErrNotFound.
func (s *ArticleService) Get(ctx context.Context, id string, viewer *domain.Viewer) (*ArticleDetail, error) {
	now := s.now()

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if policy.ArticleVisibility(article, viewer, now) != policy.Visible {
		return nil, domain.ErrNotFound
	}

	bodyHTML, err := render.HTML(article.Body)
	if err != nil {
		return nil, fmt.Errorf("render article: %w", err)
	}

	fetched, err := s.comments.ListForArticle(ctx, article.ID, now)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	comments := make([]domain.Comment, 0, len(fetched))
	for _, comment := range fetched {
		if policy.IsCommentListed(&comment, now) {
			comments = append(comments, comment)
		}
	}

	return &ArticleDetail{
		Article:  *article,
		BodyHTML: bodyHTML,
		Comments: comments,
	}, nil
}

// Create stores a new draft. The author is always the authenticated
// viewer; any author carried in the input is ignored.
func (s *ArticleService) Create(ctx context.Context, viewer *domain.Viewer, input domain.ArticleInput) (*domain.Article, error) {
	if viewer == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.validator.ValidateArticleInput(&input); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	author, err := s.users.Ensure(ctx, viewer.Username)
	if err != nil {
		return nil, fmt.Errorf("ensure author: %w", err)
	}

	now := s.now()
	article := &domain.Article{
		ID:            uuid.New().String(),
		AuthorID:      author.ID,
		AuthorName:    author.Username,
		CategoryID:    category.ID,
		CategorySlug:  category.Slug,
		CategoryTitle: category.Title,
		Title:         input.Title,
		Body:          input.Body,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.articles.Insert(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.ArticlesCreatedTotal.Inc()
	logger.InfoContext(ctx, "article created",
		slog.String("article_id", article.ID),
		slog.String("author", author.Username))
	return article, nil
}

// Update saves the mutable fields of an article. A viewer who does not own
// the article gets ErrNotFound, never a distinct forbidden outcome.
func (s *ArticleService) Update(ctx context.Context, id string, viewer *domain.Viewer, input domain.ArticleInput) (*domain.Article, error) {
	article, err := s.ownedArticle(ctx, id, viewer)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateArticleInput(&input); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	article.Title = input.Title
	article.Body = input.Body
	article.CategoryID = category.ID
	article.CategorySlug = category.Slug
	article.CategoryTitle = category.Title
	article.UpdatedAt = s.now()

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

// Delete removes an article and its comments.
func (s *ArticleService) Delete(ctx context.Context, id string, viewer *domain.Viewer) error {
	article, err := s.ownedArticle(ctx, id, viewer)
	if err != nil {
		return err
	}

	if err := s.articles.Delete(ctx, article.ID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	logger.WithArticleID(article.ID).InfoContext(ctx, "article deleted",
		slog.String("author", viewer.Username))
	return nil
}

// Publish stamps the article with the current time. Publishing an
// already-published article refreshes its timestamp.
func (s *ArticleService) Publish(ctx context.Context, id string, viewer *domain.Viewer) (*domain.Article, error) {
	article, err := s.ownedArticle(ctx, id, viewer)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.articles.SetPublishedAt(ctx, article.ID, now); err != nil {
		return nil, fmt.Errorf("publish article: %w", err)
	}
	article.PublishedAt = &now
	article.UpdatedAt = now

	metrics.ArticlesPublishedTotal.Inc()
	logger.InfoContext(ctx, "article published",
		slog.String("article_id", article.ID),
		slog.String("author", viewer.Username))
	return article, nil
}

// ownedArticle fetches an article for mutation, applying the
// unauthenticated/not-found gating shared by update, delete, and publish.
func (s *ArticleService) ownedArticle(ctx context.Context, id string, viewer *domain.Viewer) (*domain.Article, error) {
	if viewer == nil {
		return nil, domain.ErrUnauthenticated
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if !policy.CanMutate(article, viewer) {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

// resolveCategory looks up the target category, turning an unknown id into
// a field-level validation error so forms can re-render.
func (s *ArticleService) resolveCategory(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, validation.Errors{
			"category_id": validation.NewError("category_not_found", "category does not exist"),
		}
	}
	return category, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/logger"
	"github.com/pkonnov/myblog/internal/metrics"
	"github.com/pkonnov/myblog/internal/policy"
	"github.com/pkonnov/myblog/internal/repository"
	"github.com/pkonnov/myblog/internal/validator"
)

// CommentService implements visitor comments and their moderation.
type CommentService struct {
	comments  repository.CommentRepository
	articles  repository.ArticleRepository
	validator *validator.Validator

	now func() time.Time
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	comments repository.CommentRepository,
	articles repository.ArticleRepository,
	v *validator.Validator,
) *CommentService {
	return &CommentService{
		comments:  comments,
		articles:  articles,
		validator: v,
		now:       time.Now,
	}
}

// SetClock overrides the service clock. Tests only.
func (s *CommentService) SetClock(now func() time.Time) {
	s.now = now
}

// Create attaches a comment to an article. No account is needed, but the
// target article must be visible to the commenting viewer; commenting on a
// hidden draft reports not-found like any other read.
func (s *CommentService) Create(ctx context.Context, articleID string, viewer *domain.Viewer, input domain.CommentInput) (*domain.Comment, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if !policy.IsArticleVisible(article, viewer, s.now()) {
		return nil, domain.ErrNotFound
	}

	if err := s.validator.ValidateCommentInput(&input); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:         uuid.New().String(),
		ArticleID:  article.ID,
		AuthorName: input.AuthorName,
		Body:       input.Body,
		Approved:   false,
		CreatedAt:  s.now(),
	}
	if err := s.comments.Insert(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.CommentsCreatedTotal.Inc()
	logger.InfoContext(ctx, "comment created",
		slog.String("comment_id", comment.ID),
		slog.String("article_id", article.ID))
	return comment, nil
}

// Approve marks a comment approved. Idempotent.
func (s *CommentService) Approve(ctx context.Context, id string, viewer *domain.Viewer) error {
	comment, err := s.moderatedComment(ctx, id, viewer)
	if err != nil {
		return err
	}

	if err := s.comments.Approve(ctx, comment.ID); err != nil {
		return fmt.Errorf("approve comment: %w", err)
	}

	metrics.CommentsApprovedTotal.Inc()
	logger.WithViewer(viewer.Username).InfoContext(ctx, "comment approved",
		slog.String("comment_id", comment.ID))
	return nil
}

// Delete removes a comment.
func (s *CommentService) Delete(ctx context.Context, id string, viewer *domain.Viewer) error {
	comment, err := s.moderatedComment(ctx, id, viewer)
	if err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	logger.InfoContext(ctx, "comment deleted",
		slog.String("comment_id", comment.ID),
		slog.String("moderator", viewer.Username))
	return nil
}

// moderatedComment fetches a comment for a moderation action. A viewer
// without the moderator capability gets ErrNotFound, matching the masking
// rule used for article ownership.
func (s *CommentService) moderatedComment(ctx context.Context, id string, viewer *domain.Viewer) (*domain.Comment, error) {
	if viewer == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !policy.CanModerateComments(viewer) {
		return nil, domain.ErrNotFound
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if comment == nil {
		return nil, domain.ErrNotFound
	}
	return comment, nil
}

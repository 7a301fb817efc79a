package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkonnov/myblog/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Insert stores a new comment.
func (r *PostgresCommentRepository) Insert(ctx context.Context, comment *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, article_id, author_name, body, approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, comment.ID, comment.ArticleID, comment.AuthorName, comment.Body, comment.Approved, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID fetches a comment by id.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT id, article_id, author_name, body, approved, created_at
		FROM comments
		WHERE id = $1
	`, id).Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Body, &c.Approved, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

// ListForArticle returns the comments of an article with created_at <= now,
// oldest first.
func (r *PostgresCommentRepository) ListForArticle(ctx context.Context, articleID string, now time.Time) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, article_id, author_name, body, approved, created_at
		FROM comments
		WHERE article_id = $1 AND created_at <= $2
		ORDER BY created_at ASC
	`, articleID, now)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Body, &c.Approved, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Approve marks a comment approved. Approving an already-approved comment
// is a no-op.
func (r *PostgresCommentRepository) Approve(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE comments SET approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("approve comment: %w", err)
	}
	return nil
}

// Delete removes a comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkonnov/myblog/internal/domain"
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

const articleJoin = `
	FROM articles a
	JOIN users u ON u.id = a.author_id
	JOIN categories c ON c.id = a.category_id
`

// Insert stores a new article.
func (r *PostgresArticleRepository) Insert(ctx context.Context, article *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, author_id, category_id, title, body, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, article.ID, article.AuthorID, article.CategoryID, article.Title, article.Body,
		article.PublishedAt, article.CreatedAt, article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID fetches an article with its author and category resolved.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
		SELECT a.id, a.author_id, u.username, a.category_id, c.slug, c.title,
		       a.title, a.body, a.published_at, a.created_at, a.updated_at
	`+articleJoin+`
		WHERE a.id = $1
	`, id).Scan(&a.ID, &a.AuthorID, &a.AuthorName, &a.CategoryID, &a.CategorySlug, &a.CategoryTitle,
		&a.Title, &a.Body, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// Update saves the mutable fields of an article. Author and created_at
// never change after creation.
func (r *PostgresArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET title = $2, category_id = $3, body = $4, updated_at = $5
		WHERE id = $1
	`, article.ID, article.Title, article.CategoryID, article.Body, article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// SetPublishedAt stamps the publication instant.
func (r *PostgresArticleRepository) SetPublishedAt(ctx context.Context, id string, publishedAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET published_at = $2, updated_at = $2
		WHERE id = $1
	`, id, publishedAt)
	if err != nil {
		return fmt.Errorf("publish article: %w", err)
	}
	return nil
}

// Delete removes an article and its comments in a single transaction so an
// interrupted delete cannot orphan comments.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE article_id = $1`, id); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// Count returns the total number of articles matching a query.
func (r *PostgresArticleRepository) Count(ctx context.Context, q domain.ArticleQuery) (int, error) {
	where, args := buildArticleFilter(q)

	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+articleJoin+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return total, nil
}

// List returns one ordered window of the articles matching a query.
// Published listings order by published_at descending; drafts by
// created_at descending. Ties break on title ascending, compared by code
// point (COLLATE "C") regardless of the database locale.
func (r *PostgresArticleRepository) List(ctx context.Context, q domain.ArticleQuery, limit, offset int) ([]domain.ArticleSummary, error) {
	where, args := buildArticleFilter(q)

	orderColumn := "a.published_at"
	if q.Mode == domain.ListDrafts {
		orderColumn = "a.created_at"
	}

	query := `
		SELECT a.id, a.title, a.body, u.username, c.slug, c.title,
		       a.published_at, a.created_at,
		       (SELECT COUNT(*) FROM comments cm
		        WHERE cm.article_id = a.id AND cm.approved) AS approved_comments
	` + articleJoin + where + fmt.Sprintf(`
		ORDER BY %s DESC, a.title COLLATE "C" ASC
		LIMIT $%d OFFSET $%d
	`, orderColumn, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var summaries []domain.ArticleSummary
	for rows.Next() {
		var s domain.ArticleSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Body, &s.AuthorName, &s.CategorySlug, &s.CategoryTitle,
			&s.PublishedAt, &s.CreatedAt, &s.ApprovedComments); err != nil {
			return nil, fmt.Errorf("scan article summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// buildArticleFilter translates a query specification into a WHERE clause.
func buildArticleFilter(q domain.ArticleQuery) (string, []any) {
	var clauses []string
	var args []any

	addClause := func(clause string, vals ...any) {
		for _, v := range vals {
			clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(args)+1), 1)
			args = append(args, v)
		}
		clauses = append(clauses, clause)
	}

	if q.Mode == domain.ListDrafts {
		addClause("a.published_at IS NULL")
		addClause("u.username = ?", q.Owner)
	} else {
		addClause("a.published_at <= ?", q.Now)

		switch q.Mode {
		case domain.ListByCategory:
			addClause("c.slug = ?", q.CategorySlug)
		case domain.ListByAuthor:
			addClause("u.username = ?", q.Author)
		case domain.ListByDate:
			dayStart := time.Date(q.Year, q.Month, q.Day, 0, 0, 0, 0, time.UTC)
			addClause("a.published_at >= ?", dayStart)
			addClause("a.published_at < ?", dayStart.AddDate(0, 0, 1))
		case domain.ListSearch:
			addClause("a.body ILIKE ?", "%"+escapeLike(q.SearchTerm)+"%")
		}
	}

	return "\n\tWHERE " + strings.Join(clauses, " AND ") + "\n", args
}

// escapeLike neutralizes LIKE metacharacters so a search term matches
// literally.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

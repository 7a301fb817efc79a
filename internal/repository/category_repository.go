package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkonnov/myblog/internal/domain"
)

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// Insert stores a new category.
func (r *PostgresCategoryRepository) Insert(ctx context.Context, category *domain.Category) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (id, title, text, slug)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, category.ID, category.Title, category.Text, category.Slug).
		Scan(&category.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID fetches a category by id.
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.get(ctx, "id", id)
}

// GetBySlug fetches a category by its url-safe slug.
func (r *PostgresCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.get(ctx, "slug", slug)
}

func (r *PostgresCategoryRepository) get(ctx context.Context, column, value string) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, title, text, slug, created_at
		FROM categories
		WHERE %s = $1
	`, column), value).Scan(&c.ID, &c.Title, &c.Text, &c.Slug, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List returns all categories ordered by title.
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, text, slug, created_at
		FROM categories
		ORDER BY title
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Text, &c.Slug, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

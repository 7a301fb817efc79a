package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/policy"
	"github.com/pkonnov/myblog/internal/repository"
	"github.com/pkonnov/myblog/internal/validator"
)

// CategoryService implements category listing and creation. Categories are
// immutable after creation.
type CategoryService struct {
	categories repository.CategoryRepository
	validator  *validator.Validator
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories repository.CategoryRepository, v *validator.Validator) *CategoryService {
	return &CategoryService{categories: categories, validator: v}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// Create stores a new category. Admins only; anyone else gets the same
// not-found masking as other ungranted operations.
func (s *CategoryService) Create(ctx context.Context, viewer *domain.Viewer, input domain.CategoryInput) (*domain.Category, error) {
	if viewer == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !policy.CanManageCategories(viewer) {
		return nil, domain.ErrNotFound
	}
	if err := s.validator.ValidateCategoryInput(&input); err != nil {
		return nil, err
	}

	existing, err := s.categories.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if existing != nil {
		return nil, validation.Errors{
			"slug": validation.NewError("slug_taken", "slug is already in use"),
		}
	}

	category := &domain.Category{
		ID:    uuid.New().String(),
		Title: input.Title,
		Text:  input.Text,
		Slug:  input.Slug,
	}
	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

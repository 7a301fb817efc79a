package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pkonnov/myblog/internal/domain"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator provides validation methods for incoming form data. Failures
// are ozzo validation.Errors keyed by field so handlers can re-render
// forms with field-level detail.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticleInput validates the fields of an article create or update
// request.
func (v *Validator) ValidateArticleInput(in *domain.ArticleInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 200).Error("title_too_long"),
		),
		validation.Field(&in.CategoryID,
			validation.Required.Error("category_required"),
		),
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
		),
	)
}

// ValidateCommentInput validates the fields of a new comment.
func (v *Validator) ValidateCommentInput(in *domain.CommentInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.AuthorName,
			validation.Required.Error("author_required"),
			validation.Length(1, 200).Error("author_too_long"),
		),
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
		),
	)
}

// ValidateCategoryInput validates the fields of a new category.
func (v *Validator) ValidateCategoryInput(in *domain.CategoryInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 200).Error("title_too_long"),
		),
		validation.Field(&in.Slug,
			validation.Required.Error("slug_required"),
			validation.Length(1, 20).Error("slug_too_long"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
	)
}

// IsValidationError reports whether err carries field-level validation
// detail.
func IsValidationError(err error) bool {
	_, ok := err.(validation.Errors)
	return ok
}

// FieldErrors flattens a validation error into a field -> reason map for
// API responses. A non-validation error maps to a single "_" entry.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
		return out
	}
	if err != nil {
		out["_"] = err.Error()
	}
	return out
}

package domain

import "time"

// Article represents an article entity in the system.
//
// An article is a draft while PublishedAt is nil. Setting PublishedAt to a
// future instant schedules it: until that instant passes it stays invisible
// to everyone but its author.
type Article struct {
	ID            string     `json:"id"`
	AuthorID      string     `json:"author_id"`
	AuthorName    string     `json:"author"`
	CategoryID    string     `json:"category_id"`
	CategorySlug  string     `json:"category_slug"`
	CategoryTitle string     `json:"category_title"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsPublished reports whether the article is publicly visible at the given
// instant.
func (a *Article) IsPublished(now time.Time) bool {
	return a.PublishedAt != nil && !a.PublishedAt.After(now)
}

// IsDraft reports whether the article has never been published.
func (a *Article) IsDraft() bool {
	return a.PublishedAt == nil
}

// ArticleSummary is the listing projection of an article: the fields needed
// to render one row of a paginated list. Body carries the raw article text;
// Preview is filled in by the service layer with a tag-stripped excerpt.
type ArticleSummary struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Body             string     `json:"-"`
	Preview          string     `json:"preview"`
	AuthorName       string     `json:"author"`
	CategorySlug     string     `json:"category_slug"`
	CategoryTitle    string     `json:"category_title"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	ApprovedComments int        `json:"approved_comments"`
}

// ArticleInput carries the author-supplied fields of a create or update
// request. The author itself is never part of the input: it is forced to
// the authenticated viewer by the service layer.
type ArticleInput struct {
	Title      string `json:"title"`
	CategoryID string `json:"category_id"`
	Body       string `json:"body"`
}

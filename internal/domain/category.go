package domain

import "time"

// Category represents an article category. Categories are immutable after
// creation; Slug is the url-safe key used to filter listings.
type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryInput carries the fields of a new category.
type CategoryInput struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Slug  string `json:"slug"`
}

package domain

import "time"

// Comment represents a comment entity in the system. Comments are left by
// visitors, not accounts: AuthorName is free text.
type Comment struct {
	ID         string    `json:"id"`
	ArticleID  string    `json:"article_id"`
	AuthorName string    `json:"author"`
	Body       string    `json:"body"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommentInput carries the visitor-supplied fields of a new comment.
type CommentInput struct {
	AuthorName string `json:"author"`
	Body       string `json:"body"`
}

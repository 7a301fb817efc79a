// Package policy holds the pure visibility and ownership predicates that
// gate every read and mutation. It has no dependencies beyond the domain
// types, so every rule is testable without a database or router.
package policy

import (
	"time"

	"github.com/pkonnov/myblog/internal/domain"
)

// Decision is the outcome of a visibility check. There is deliberately no
// "forbidden" value: an article a viewer may not see is reported exactly
// like one that does not exist.
type Decision int

const (
	// Visible means the viewer may read the article.
	Visible Decision = iota
	// HiddenAsNotFound means the caller must surface a not-found outcome,
	// whether the article is missing, a foreign draft, or scheduled.
	HiddenAsNotFound
)

// ArticleVisibility decides whether the viewer may read the article at the
// given instant. Published articles (published_at non-nil and <= now) are
// visible to everyone, anonymous viewers included. Drafts and scheduled
// articles are visible only to their author.
func ArticleVisibility(a *domain.Article, viewer *domain.Viewer, now time.Time) Decision {
	if a == nil {
		return HiddenAsNotFound
	}
	if a.IsPublished(now) {
		return Visible
	}
	if viewer != nil && viewer.Username == a.AuthorName {
		return Visible
	}
	return HiddenAsNotFound
}

// IsArticleVisible is the boolean form of ArticleVisibility.
func IsArticleVisible(a *domain.Article, viewer *domain.Viewer, now time.Time) bool {
	return ArticleVisibility(a, viewer, now) == Visible
}

// CanMutate reports whether the viewer may edit, publish, or delete the
// article: only its author may.
func CanMutate(a *domain.Article, viewer *domain.Viewer) bool {
	if a == nil || viewer == nil {
		return false
	}
	return viewer.Username == a.AuthorName
}

// CanModerateComments reports whether the viewer may approve or delete
// comments. Moderation is a role, not a side effect of having an account.
func CanModerateComments(viewer *domain.Viewer) bool {
	if viewer == nil {
		return false
	}
	return viewer.Role == domain.RoleModerator || viewer.Role == domain.RoleAdmin
}

// CanManageCategories reports whether the viewer may create categories.
func CanManageCategories(viewer *domain.Viewer) bool {
	return viewer != nil && viewer.Role == domain.RoleAdmin
}

// IsCommentListed reports whether a comment appears under its article.
// Comments are never scheduled in practice, so this is a safety net around
// the created-at cutoff rather than an active gate.
func IsCommentListed(c *domain.Comment, now time.Time) bool {
	return c != nil && !c.CreatedAt.After(now)
}

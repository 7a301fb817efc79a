package domain

import "time"

// ListMode selects one of the article listing modes.
type ListMode string

const (
	// ListAll lists every published article.
	ListAll ListMode = "all"
	// ListByCategory narrows to one category by slug.
	ListByCategory ListMode = "category"
	// ListByAuthor narrows to one author by username.
	ListByAuthor ListMode = "author"
	// ListByDate narrows to articles published on one calendar day.
	ListByDate ListMode = "date"
	// ListSearch narrows to articles whose body contains a term.
	ListSearch ListMode = "search"
	// ListDrafts lists the viewer's own unpublished articles.
	ListDrafts ListMode = "drafts"
)

// ArticleQuery is an explicit query specification for one listing: mode,
// filter value, and the instant "now" is evaluated at. It replaces hidden
// query-builder state so every listing is an independently testable value.
type ArticleQuery struct {
	Mode         ListMode
	CategorySlug string
	Author       string
	Year         int
	Month        time.Month
	Day          int
	SearchTerm   string
	// Owner is the viewer's username; only consulted in ListDrafts mode.
	Owner string
	// Now is the instant publication cutoffs are compared against.
	Now time.Time
}

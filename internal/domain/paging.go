package domain

import "strconv"

// PageSize is the fixed number of articles per listing page.
const PageSize = 4

// Page is one page of a listing result.
//
// TotalItems == 0 is a successful "unavailable" state, not an error: the
// page is then page 1 of 1 with zero-valued display indices.
type Page[T any] struct {
	Items       []T  `json:"items"`
	TotalItems  int  `json:"total"`
	PageNumber  int  `json:"page"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
	// StartIndex and EndIndex are 1-based positions of the first and last
	// item of this page within the full result ("showing 5-8 of 17").
	// Both are 0 when the result is empty.
	StartIndex int `json:"start_index"`
	EndIndex   int `json:"end_index"`
}

// Unavailable reports whether the listing matched nothing.
func (p Page[T]) Unavailable() bool {
	return p.TotalItems == 0
}

// ParsePageNumber interprets a raw page parameter. A missing, non-numeric
// or sub-1 value means page 1; out-of-range values are clamped later, once
// the total is known.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// TotalPages returns the number of pages needed for total items. An empty
// result still has one (empty) page.
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

// ClampPage snaps a requested page into [1, TotalPages(total)]. Requests
// past the end land on the last page rather than erroring.
func ClampPage(page, total int) int {
	last := TotalPages(total)
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}

// PageOffset returns the row offset of the given (already clamped) page.
func PageOffset(page int) int {
	return (page - 1) * PageSize
}

// NewPage assembles a Page from the items of one page, the full result
// count, and the clamped page number.
func NewPage[T any](items []T, total, page int) Page[T] {
	if items == nil {
		items = []T{}
	}
	p := Page[T]{
		Items:       items,
		TotalItems:  total,
		PageNumber:  page,
		TotalPages:  TotalPages(total),
		HasPrevious: page > 1,
	}
	p.HasNext = page < p.TotalPages
	if total > 0 {
		p.StartIndex = PageOffset(page) + 1
		p.EndIndex = PageOffset(page) + len(items)
	}
	return p
}

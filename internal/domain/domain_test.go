package domain

import (
	"testing"
	"time"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role  string
		valid bool
	}{
		{"user", true},
		{"moderator", true},
		{"admin", true},
		{"invalid", false},
		{"", false},
		{"ADMIN", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.valid {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestArticleIsPublished(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name        string
		publishedAt *time.Time
		want        bool
	}{
		{"draft", nil, false},
		{"published in the past", &past, true},
		{"published exactly now", &now, true},
		{"scheduled in the future", &future, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Article{PublishedAt: tt.publishedAt}
			if got := a.IsPublished(now); got != tt.want {
				t.Errorf("IsPublished() = %v, want %v", got, tt.want)
			}
			if got := a.IsDraft(); got != (tt.publishedAt == nil) {
				t.Errorf("IsDraft() = %v, want %v", got, tt.publishedAt == nil)
			}
		})
	}
}

func TestParsePageNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
		{"999", 999},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParsePageNumber(tt.raw); got != tt.want {
				t.Errorf("ParsePageNumber(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int
		want  int
	}{
		{"first page of ten items", 1, 10, 1},
		{"past the end lands on last page", 999, 10, 3},
		{"exactly last page", 3, 10, 3},
		{"empty result still has page 1", 5, 0, 1},
		{"below one snaps to one", 0, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.page, tt.total); got != tt.want {
				t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
			}
		})
	}
}

func TestNewPage(t *testing.T) {
	t.Run("middle page carries display indices", func(t *testing.T) {
		p := NewPage([]string{"e", "f", "g", "h"}, 17, 2)
		if p.TotalPages != 5 {
			t.Errorf("TotalPages = %d, want 5", p.TotalPages)
		}
		if !p.HasPrevious || !p.HasNext {
			t.Errorf("HasPrevious/HasNext = %v/%v, want true/true", p.HasPrevious, p.HasNext)
		}
		if p.StartIndex != 5 || p.EndIndex != 8 {
			t.Errorf("indices = %d-%d, want 5-8", p.StartIndex, p.EndIndex)
		}
		if p.Unavailable() {
			t.Error("Unavailable() = true for a non-empty page")
		}
	})

	t.Run("short last page", func(t *testing.T) {
		p := NewPage([]string{"i", "j"}, 10, 3)
		if p.HasNext {
			t.Error("HasNext = true on last page")
		}
		if !p.HasPrevious {
			t.Error("HasPrevious = false on last page")
		}
		if p.StartIndex != 9 || p.EndIndex != 10 {
			t.Errorf("indices = %d-%d, want 9-10", p.StartIndex, p.EndIndex)
		}
	})

	t.Run("empty result is a distinguishable state", func(t *testing.T) {
		p := NewPage[string](nil, 0, 1)
		if !p.Unavailable() {
			t.Error("Unavailable() = false for an empty result")
		}
		if p.Items == nil {
			t.Error("Items should be an empty slice, not nil")
		}
		if p.PageNumber != 1 || p.TotalPages != 1 {
			t.Errorf("page %d of %d, want 1 of 1", p.PageNumber, p.TotalPages)
		}
		if p.StartIndex != 0 || p.EndIndex != 0 {
			t.Errorf("indices = %d-%d, want 0-0", p.StartIndex, p.EndIndex)
		}
	})
}

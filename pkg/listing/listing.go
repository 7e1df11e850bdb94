// Package listing filters, searches and paginates an already fetched list
// in memory, the way the public news and announcement pages browse content.
package listing

import "strings"

const (
	DefaultPerPage = 9
	MaxPerPage     = 50

	// FilterAll is accepted as "no filter" alongside the empty string
	FilterAll = "all"
)

type Query struct {
	Search  string
	Filter  string // exact category or priority
	Page    int    // 1-based
	PerPage int
}

// Normalize clamps page and page size into their valid ranges
func (q Query) Normalize() Query {
	q.Search = strings.TrimSpace(q.Search)
	q.Filter = strings.TrimSpace(q.Filter)
	if strings.EqualFold(q.Filter, FilterAll) {
		q.Filter = ""
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	return q
}

// Fields tells Apply how to read an item.
type Fields[T any] struct {
	// Text returns the strings matched against the search term
	Text func(item T) []string
	// Key returns the value compared with the filter
	Key func(item T) string
}

type Page[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PerPage    int  `json:"perPage"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Apply keeps the input order. A page past the end yields no items but
// still reports the totals.
func Apply[T any](items []T, q Query, f Fields[T]) Page[T] {
	q = q.Normalize()
	needle := strings.ToLower(q.Search)

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if q.Filter != "" && f.Key != nil && f.Key(item) != q.Filter {
			continue
		}
		if needle != "" && f.Text != nil && !containsAny(f.Text(item), needle) {
			continue
		}
		matched = append(matched, item)
	}

	total := len(matched)
	totalPages := (total + q.PerPage - 1) / q.PerPage

	// Checked before multiplying so a huge page cannot overflow the offset
	start := total
	if q.Page <= totalPages {
		start = (q.Page - 1) * q.PerPage
	}
	end := start + q.PerPage
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      matched[start:end],
		Total:      total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
		HasNext:    q.Page < totalPages,
		HasPrev:    q.Page > 1,
	}
}

// Map converts the items of a page while keeping its metadata
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[U]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}

func containsAny(fields []string, needle string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Package query holds the listing contract shared by catalog and order
// queries: page/limit bounds, whitelisted sorting and page results.
package query

import (
	"math"
	"strings"
)

// SortOrder is the direction of a listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps user input onto a direction, defaulting to descending.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortAsc)) {
		return SortAsc
	}

	return SortDesc
}

// PageRequest is the uniform listing input.
type PageRequest struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder SortOrder
}

// Normalize clamps page to >= 1 and limit to 1..maxLimit, applying
// defaultLimit when limit is unset or invalid. Page is capped so the offset
// cannot overflow; a capped page is still past the end and yields no items.
func (r PageRequest) Normalize(defaultLimit, maxLimit int) PageRequest {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = defaultLimit
	}
	if maxLimit > 0 && r.Limit > maxLimit {
		r.Limit = maxLimit
	}
	if maxPage := math.MaxInt / r.Limit; r.Page > maxPage {
		r.Page = maxPage
	}
	if r.SortOrder != SortAsc {
		r.SortOrder = SortDesc
	}
	r.Search = strings.TrimSpace(r.Search)

	return r
}

// Offset is the number of rows to skip for the current page.
func (r PageRequest) Offset() int {
	if r.Page < 1 || r.Limit < 1 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.Limit {
		return math.MaxInt
	}

	return (r.Page - 1) * r.Limit
}

// Sort is a resolved, whitelisted sort column.
type Sort struct {
	Column string
	Desc   bool
}

// Whitelist maps public sort keys onto storage columns.
type Whitelist struct {
	columns    map[string]string
	defaultKey string
}

// NewWhitelist builds a whitelist; defaultKey must be one of the keys.
func NewWhitelist(defaultKey string, columns map[string]string) Whitelist {
	return Whitelist{columns: columns, defaultKey: defaultKey}
}

// Resolve returns the column for key, or the default column when the key is
// unknown. Arbitrary input never reaches the returned column name.
func (w Whitelist) Resolve(key string, order SortOrder) Sort {
	column, ok := w.columns[strings.TrimSpace(key)]
	if !ok {
		column = w.columns[w.defaultKey]
	}

	return Sort{Column: column, Desc: order != SortAsc}
}

// Page is one page of a listing result.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Count       int64 `json:"count"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

// NewPage assembles a page for req; items must already be limited by the caller.
func NewPage[T any](items []T, count int64, req PageRequest) *Page[T] {
	if items == nil {
		items = make([]T, 0)
	}

	return &Page[T]{
		Items:       items,
		Count:       count,
		CurrentPage: req.Page,
		TotalPages:  TotalPages(count, req.Limit),
	}
}

// EmptyPage is the result of a filter that cannot match anything.
func EmptyPage[T any](req PageRequest) *Page[T] {
	return NewPage[T](nil, 0, req)
}

// TotalPages is ceil(count/limit), zero when there is nothing to page.
func TotalPages(count int64, limit int) int {
	if count <= 0 || limit <= 0 {
		return 0
	}

	return int((count + int64(limit) - 1) / int64(limit))
}

// EscapeLike escapes LIKE wildcards so search input matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Package pagination provides offset pagination for in-memory collections.
// The order ledger only grows, so listings page rather than return the
// whole history.
package pagination

import "math"

// Pagination represents pagination metadata on a response
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// Params represents input parameters for pagination
type Params struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// Validate clamps pagination parameters into valid ranges.
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 15
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// NewPagination creates pagination metadata for a total item count.
func NewPagination(page, perPage int, total int64) *Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	return &Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// PaginatedResult holds one page of items plus its metadata.
type PaginatedResult[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// Paginate slices one page out of an in-memory collection. The input order
// is preserved; an out-of-range page yields an empty items list.
func Paginate[T any](items []T, p *Params) *PaginatedResult[T] {
	p.Validate()
	total := int64(len(items))

	start := (p.Page - 1) * p.PerPage
	if start > len(items) {
		start = len(items)
	}
	end := start + p.PerPage
	if end > len(items) {
		end = len(items)
	}

	return &PaginatedResult[T]{
		Items:      items[start:end],
		Pagination: NewPagination(p.Page, p.PerPage, total),
	}
}

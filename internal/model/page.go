package model

import "math"

const (
	// DefaultPage is used when the caller omits the page number.
	DefaultPage = 1
	// DefaultPageSize is used when the caller omits the page size.
	DefaultPageSize = 10
)

// PageQuery selects a page of records, optionally filtered by keyword.
type PageQuery struct {
	Page     int    `json:"page" validate:"gte=1"`
	PageSize int    `json:"pageSize" validate:"gte=1,lte=100"`
	Keyword  string `json:"keyword"`
}

// WithDefaults fills in the page number and size when they are unset.
func (q PageQuery) WithDefaults() PageQuery {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	return q
}

// Offset is the number of records skipped before the page.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Page is one page of records.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPage wraps data returned for q out of total matching records.
func NewPage[T any](data []T, total int64, q PageQuery) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:       data,
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(q.PageSize))),
	}
}

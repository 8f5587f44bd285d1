package handler

import (
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type PaginationParams struct {
	Limit  int
	Offset int
}

// Pagination holds the limit bounds applied to list endpoints.
type Pagination struct {
	DefaultLimit int
	MaxLimit     int
}

func DefaultPagination() Pagination {
	return Pagination{DefaultLimit: DefaultLimit, MaxLimit: MaxLimit}
}

// Parse reads limit and offset from the query string. skip is accepted in
// place of offset. A missing or non-positive limit falls back to the default,
// and a limit above the maximum is clamped to it.
func (p Pagination) Parse(r *http.Request) PaginationParams {
	query := r.URL.Query()

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit <= 0 {
		limit = p.DefaultLimit
	}
	if limit > p.MaxLimit {
		limit = p.MaxLimit
	}

	rawOffset := query.Get("offset")
	if rawOffset == "" {
		rawOffset = query.Get("skip")
	}
	offset, _ := strconv.Atoi(rawOffset)
	if offset < 0 {
		offset = 0
	}

	return PaginationParams{
		Limit:  limit,
		Offset: offset,
	}
}

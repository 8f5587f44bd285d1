package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Parse(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		limit  int
		offset int
	}{
		{"defaults", "", 100, 0},
		{"explicit values", "?limit=10&offset=20", 10, 20},
		{"skip alias", "?skip=5", 100, 5},
		{"offset wins over skip", "?offset=3&skip=5", 100, 3},
		{"limit clamped to max", "?limit=5000", 1000, 0},
		{"non positive limit uses default", "?limit=0", 100, 0},
		{"garbage falls back", "?limit=abc&offset=xyz", 100, 0},
		{"negative offset", "?offset=-4", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/exercises/"+tt.query, nil)

			params := DefaultPagination().Parse(req)

			assert.Equal(t, tt.limit, params.Limit)
			assert.Equal(t, tt.offset, params.Offset)
		})
	}
}

func TestPagination_CustomBounds(t *testing.T) {
	p := Pagination{DefaultLimit: 20, MaxLimit: 50}

	assert.Equal(t, 20, p.Parse(httptest.NewRequest("GET", "/", nil)).Limit)
	assert.Equal(t, 50, p.Parse(httptest.NewRequest("GET", "/?limit=51", nil)).Limit)
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsNormalized(t *testing.T) {
	tests := []struct {
		name           string
		params         ListParams
		maxLimit       int
		expectedLimit  int
		expectedOffset int
	}{
		{
			name:           "zero limit takes default",
			params:         ListParams{},
			maxLimit:       MaxLimit,
			expectedLimit:  DefaultLimit,
			expectedOffset: 0,
		},
		{
			name:           "negative limit clamps to one",
			params:         ListParams{Limit: -5},
			maxLimit:       MaxLimit,
			expectedLimit:  1,
			expectedOffset: 0,
		},
		{
			name:           "oversized limit clamps to max",
			params:         ListParams{Limit: 10000},
			maxLimit:       MaxLimit,
			expectedLimit:  MaxLimit,
			expectedOffset: 0,
		},
		{
			name:           "coords allow a wider max",
			params:         ListParams{Limit: 400},
			maxLimit:       MaxCoordLimit,
			expectedLimit:  400,
			expectedOffset: 0,
		},
		{
			name:           "negative offset clamps to zero",
			params:         ListParams{Limit: 10, Offset: -3},
			maxLimit:       MaxLimit,
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "in-range values pass through",
			params:         ListParams{Limit: 50, Offset: 100},
			maxLimit:       MaxLimit,
			expectedLimit:  50,
			expectedOffset: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.params.Normalized(tt.maxLimit)
			assert.Equal(t, tt.expectedLimit, got.Limit)
			assert.Equal(t, tt.expectedOffset, got.Offset)
		})
	}
}

func TestResolveOrder(t *testing.T) {
	allowed := map[string]string{
		"name":       "name",
		"created_at": "created_at",
	}

	tests := []struct {
		name     string
		sortBy   string
		sortDir  string
		expected string
	}{
		{"known column ascending", "name", "asc", "name ASC"},
		{"known column descending", "created_at", "desc", "created_at DESC"},
		{"case-insensitive direction", "name", "DESC", "name DESC"},
		{"unknown column falls back", "password_hash", "asc", "name ASC"},
		{"injection attempt falls back", "name; DROP TABLE devices", "asc", "name ASC"},
		{"unknown direction defaults to asc", "name", "sideways", "name ASC"},
		{"empty everything", "", "", "name ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveOrder(allowed, tt.sortBy, tt.sortDir, "name"))
		})
	}
}

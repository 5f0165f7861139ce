package repository

import "strings"

const (
	// DefaultLimit applies when the caller sends none.
	DefaultLimit = 20
	// MaxLimit caps page size for every entity except coords.
	MaxLimit = 100
	// MaxCoordLimit is wider because the map renders whole categories at once.
	MaxCoordLimit = 500
)

// ListParams carries pagination and ordering for list queries.
// Values arrive straight from the query string; repositories normalize
// before building SQL, so handlers never need to sanitize.
type ListParams struct {
	Limit   int
	Offset  int
	SortBy  string
	SortDir string
}

// Normalized clamps limit to [1,maxLimit] and offset to >= 0.
// A zero limit means "not supplied" and takes the default.
func (p ListParams) Normalized(maxLimit int) ListParams {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// resolveOrder maps a caller-supplied sort key through a fixed allow-list.
// Unrecognized keys silently fall back to the default column, so the
// ORDER BY clause is always assembled from trusted strings.
func resolveOrder(allowed map[string]string, sortBy, sortDir, defaultColumn string) string {
	column, ok := allowed[sortBy]
	if !ok {
		column = defaultColumn
	}
	dir := "ASC"
	if strings.EqualFold(sortDir, "desc") {
		dir = "DESC"
	}
	return column + " " + dir
}

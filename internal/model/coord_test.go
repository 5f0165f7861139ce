package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordMarshalsDecimalsAsNumbers(t *testing.T) {
	c := Coord{
		ID:       1,
		Category: CoordCategoryTop10,
		Name:     "Westminster",
		Lat:      decimal.RequireFromString("51.5007325"),
		Lng:      decimal.RequireFromString("-0.1272003"),
	}

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"lat":51.5007325`)
	assert.Contains(t, string(raw), `"lng":-0.1272003`)
}

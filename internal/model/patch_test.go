package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPatchFieldsPresence(t *testing.T) {
	t.Run("empty patches produce no assignments", func(t *testing.T) {
		assert.Empty(t, DevicePatch{}.Fields())
		assert.Empty(t, NewsPatch{}.Fields())
		assert.Empty(t, CoordPatch{}.Fields())
		assert.Empty(t, IssuePatch{}.Fields())
	})

	t.Run("only present fields appear", func(t *testing.T) {
		name := "Pixel 6"
		compatible := true
		fields := DevicePatch{Name: &name, Compatible: &compatible}.Fields()

		assert.Len(t, fields, 2)
		assert.Equal(t, "Pixel 6", fields["name"])
		assert.Equal(t, true, fields["compatible"])
	})

	t.Run("present empty string is still an assignment", func(t *testing.T) {
		empty := ""
		fields := NewsPatch{Excerpt: &empty}.Fields()

		assert.Len(t, fields, 1)
		assert.Equal(t, "", fields["excerpt"])
	})

	t.Run("coord decimals carried through", func(t *testing.T) {
		lat := decimal.NewFromFloat(51.5007325)
		fields := CoordPatch{Lat: &lat}.Fields()

		assert.Len(t, fields, 1)
		assert.True(t, lat.Equal(fields["lat"].(decimal.Decimal)))
	})
}

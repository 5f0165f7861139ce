package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coord rows serialize directly on the admin surface; decimals must come
// out as JSON numbers there, matching the public DTOs.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// CoordCategory classifies a point of interest.
type CoordCategory string

const (
	CoordCategoryTop10     CoordCategory = "top10"
	CoordCategoryNotable   CoordCategory = "notable"
	CoordCategoryRaidSpots CoordCategory = "raid_spots"
)

// ValidCoordCategory reports whether c is one of the known categories.
func ValidCoordCategory(c CoordCategory) bool {
	switch c {
	case CoordCategoryTop10, CoordCategoryNotable, CoordCategoryRaidSpots:
		return true
	}
	return false
}

// Coord represents a shared map coordinate.
type Coord struct {
	ID        uint64          `json:"id" gorm:"primaryKey"`
	Category  CoordCategory   `json:"category" gorm:"type:varchar(20);index"`
	Name      string          `json:"name" gorm:"size:255"`
	Lat       decimal.Decimal `json:"lat" gorm:"type:decimal(10,7)"`
	Lng       decimal.Decimal `json:"lng" gorm:"type:decimal(10,7)"`
	Note      string          `json:"note" gorm:"type:text"`
	Tags      StringList      `json:"tags"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CoordPatch carries a partial update; nil fields are left untouched.
type CoordPatch struct {
	Category *CoordCategory   `json:"category"`
	Name     *string          `json:"name"`
	Lat      *decimal.Decimal `json:"lat"`
	Lng      *decimal.Decimal `json:"lng"`
	Note     *string          `json:"note"`
	Tags     *StringList      `json:"tags"`
}

// Fields returns the column assignments present in the patch.
func (p CoordPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	setString(fields, "name", p.Name)
	if p.Lat != nil {
		fields["lat"] = *p.Lat
	}
	if p.Lng != nil {
		fields["lng"] = *p.Lng
	}
	setString(fields, "note", p.Note)
	setList(fields, "tags", p.Tags)
	return fields
}

// Package validate holds the pure shape checks gating admin writes.
// Validators never panic and never touch I/O; absent optional fields are
// acceptable, present fields must hold sensible values.
package validate

import (
	"strings"

	"github.com/shopspring/decimal"

	"rootdex/internal/model"
)

// Result collects validation failures for a payload.
type Result struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors"`
}

func result(errs []string) Result {
	return Result{OK: len(errs) == 0, Errors: errs}
}

var (
	latMin = decimal.NewFromInt(-90)
	latMax = decimal.NewFromInt(90)
	lngMin = decimal.NewFromInt(-180)
	lngMax = decimal.NewFromInt(180)
)

// Device checks a full device payload for create.
func Device(d *model.Device) Result {
	var errs []string
	if d == nil {
		return result([]string{"payload required"})
	}
	if strings.TrimSpace(d.Name) == "" && strings.TrimSpace(d.Model) == "" {
		errs = append(errs, "name or model must be non-empty")
	}
	return result(errs)
}

// DevicePatch checks the present fields of a partial device update.
func DevicePatch(p model.DevicePatch) Result {
	var errs []string
	if p.Name != nil && p.Model != nil &&
		strings.TrimSpace(*p.Name) == "" && strings.TrimSpace(*p.Model) == "" {
		errs = append(errs, "name or model must be non-empty")
	}
	return result(errs)
}

// News checks a full news payload for create.
func News(n *model.News) Result {
	var errs []string
	if n == nil {
		return result([]string{"payload required"})
	}
	if strings.TrimSpace(n.Title) == "" {
		errs = append(errs, "title must be non-empty")
	}
	if strings.TrimSpace(n.Content) == "" {
		errs = append(errs, "content must be non-empty")
	}
	return result(errs)
}

// NewsPatch checks the present fields of a partial news update.
func NewsPatch(p model.NewsPatch) Result {
	var errs []string
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs = append(errs, "title must be non-empty")
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		errs = append(errs, "content must be non-empty")
	}
	return result(errs)
}

// Coord checks a full coordinate payload for create.
func Coord(c *model.Coord) Result {
	var errs []string
	if c == nil {
		return result([]string{"payload required"})
	}
	if !model.ValidCoordCategory(c.Category) {
		errs = append(errs, "category must be one of top10, notable, raid_spots")
	}
	errs = append(errs, coordRange(c.Lat, c.Lng)...)
	return result(errs)
}

// CoordPatch checks the present fields of a partial coordinate update.
func CoordPatch(p model.CoordPatch) Result {
	var errs []string
	if p.Category != nil && !model.ValidCoordCategory(*p.Category) {
		errs = append(errs, "category must be one of top10, notable, raid_spots")
	}
	if p.Lat != nil && (p.Lat.LessThan(latMin) || p.Lat.GreaterThan(latMax)) {
		errs = append(errs, "lat must be between -90 and 90")
	}
	if p.Lng != nil && (p.Lng.LessThan(lngMin) || p.Lng.GreaterThan(lngMax)) {
		errs = append(errs, "lng must be between -180 and 180")
	}
	return result(errs)
}

func coordRange(lat, lng decimal.Decimal) []string {
	var errs []string
	if lat.LessThan(latMin) || lat.GreaterThan(latMax) {
		errs = append(errs, "lat must be between -90 and 90")
	}
	if lng.LessThan(lngMin) || lng.GreaterThan(lngMax) {
		errs = append(errs, "lng must be between -180 and 180")
	}
	return errs
}

// Issue checks a full issue payload for create.
func Issue(i *model.Issue) Result {
	var errs []string
	if i == nil {
		return result([]string{"payload required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, "title must be non-empty")
	}
	if i.Status != "" && !model.ValidIssueStatus(i.Status) {
		errs = append(errs, "status must be one of open, in_progress, resolved, closed, blocked")
	}
	return result(errs)
}

// IssuePatch checks the present fields of a partial issue update.
func IssuePatch(p model.IssuePatch) Result {
	var errs []string
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs = append(errs, "title must be non-empty")
	}
	if p.Status != nil && !model.ValidIssueStatus(*p.Status) {
		errs = append(errs, "status must be one of open, in_progress, resolved, closed, blocked")
	}
	return result(errs)
}

package handler

import (
	"time"

	"rootdex/internal/model"
)

// Public DTOs reshape entities for the site: internal bookkeeping columns
// stay server-side, list fields always serialize as arrays.

// DeviceDTO is the public shape of a catalog device.
type DeviceDTO struct {
	ID              uint64   `json:"id"`
	Name            string   `json:"name"`
	Model           string   `json:"model"`
	Brand           string   `json:"brand"`
	Type            string   `json:"type"`
	OS              string   `json:"os"`
	Compatible      bool     `json:"compatible"`
	Notes           []string `json:"notes"`
	ManufacturerURL string   `json:"manufacturer_url,omitempty"`
	RootLinks       []string `json:"root_links"`
	PriceRange      string   `json:"price_range,omitempty"`
	PogoComp        string   `json:"pogo_comp,omitempty"`
	Status          string   `json:"status"`
}

func toDeviceDTO(d model.Device) DeviceDTO {
	return DeviceDTO{
		ID:              d.ID,
		Name:            d.Name,
		Model:           d.Model,
		Brand:           d.Brand,
		Type:            d.Type,
		OS:              d.OS,
		Compatible:      d.Compatible,
		Notes:           emptyIfNil(d.Notes),
		ManufacturerURL: d.ManufacturerURL,
		RootLinks:       emptyIfNil(d.RootLinks),
		PriceRange:      d.PriceRange,
		PogoComp:        d.PogoComp,
		Status:          d.Status,
	}
}

func toDeviceDTOs(devices []model.Device) []DeviceDTO {
	out := make([]DeviceDTO, 0, len(devices))
	for _, d := range devices {
		out = append(out, toDeviceDTO(d))
	}
	return out
}

// NewsDTO is the public shape of a published news post.
type NewsDTO struct {
	ID          uint64     `json:"id"`
	Slug        string     `json:"slug"`
	Date        string     `json:"date"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"image_url,omitempty"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toNewsDTO(n model.News) NewsDTO {
	return NewsDTO{
		ID:          n.ID,
		Slug:        n.Slug,
		Date:        n.Date,
		Title:       n.Title,
		Excerpt:     n.Excerpt,
		Content:     n.Content,
		ImageURL:    n.ImageURL,
		Tags:        emptyIfNil(n.Tags),
		PublishedAt: n.PublishedAt,
		UpdatedAt:   n.UpdatedAtExt,
	}
}

func toNewsDTOs(items []model.News) []NewsDTO {
	out := make([]NewsDTO, 0, len(items))
	for _, n := range items {
		out = append(out, toNewsDTO(n))
	}
	return out
}

// CoordDTO is the public shape of a map coordinate.
type CoordDTO struct {
	ID       uint64   `json:"id"`
	Category string   `json:"category"`
	Name     string   `json:"name"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Note     string   `json:"note,omitempty"`
	Tags     []string `json:"tags"`
}

func toCoordDTO(co model.Coord) CoordDTO {
	return CoordDTO{
		ID:       co.ID,
		Category: string(co.Category),
		Name:     co.Name,
		Lat:      co.Lat.InexactFloat64(),
		Lng:      co.Lng.InexactFloat64(),
		Note:     co.Note,
		Tags:     emptyIfNil(co.Tags),
	}
}

func toCoordDTOs(coords []model.Coord) []CoordDTO {
	out := make([]CoordDTO, 0, len(coords))
	for _, co := range coords {
		out = append(out, toCoordDTO(co))
	}
	return out
}

// IssueDTO is the public shape of a tracked issue.
type IssueDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toIssueDTO(i model.Issue) IssueDTO {
	return IssueDTO{
		ID:        i.ID,
		Title:     i.Title,
		Content:   i.Content,
		Status:    string(i.Status),
		Tags:      emptyIfNil(i.Tags),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func toIssueDTOs(issues []model.Issue) []IssueDTO {
	out := make([]IssueDTO, 0, len(issues))
	for _, i := range issues {
		out = append(out, toIssueDTO(i))
	}
	return out
}

// ListResponse is the admin list envelope carrying a total for pagination.
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}

func emptyIfNil(l model.StringList) []string {
	if l == nil {
		return []string{}
	}
	return l
}

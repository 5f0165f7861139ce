package model

import "time"

// Device represents a catalog entry for a rootable handset.
type Device struct {
	ID              uint64     `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" gorm:"size:255;index"`
	Model           string     `json:"model" gorm:"size:255;index"`
	Brand           string     `json:"brand" gorm:"size:128;index"`
	Type            string     `json:"type" gorm:"size:64;index"`
	OS              string     `json:"os" gorm:"size:128"`
	Compatible      bool       `json:"compatible" gorm:"index"`
	Notes           StringList `json:"notes"`
	ManufacturerURL string     `json:"manufacturer_url" gorm:"size:512"`
	RootLinks       StringList `json:"root_links"`
	PriceRange      string     `json:"price_range" gorm:"size:64"`
	PogoComp        string     `json:"pogo_comp" gorm:"size:128"`
	Status          string     `json:"status" gorm:"size:32;index"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// DevicePatch carries a partial update; nil fields are left untouched.
type DevicePatch struct {
	Name            *string     `json:"name"`
	Model           *string     `json:"model"`
	Brand           *string     `json:"brand"`
	Type            *string     `json:"type"`
	OS              *string     `json:"os"`
	Compatible      *bool       `json:"compatible"`
	Notes           *StringList `json:"notes"`
	ManufacturerURL *string     `json:"manufacturer_url"`
	RootLinks       *StringList `json:"root_links"`
	PriceRange      *string     `json:"price_range"`
	PogoComp        *string     `json:"pogo_comp"`
	Status          *string     `json:"status"`
}

// Fields returns the column assignments present in the patch.
func (p DevicePatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setString(fields, "name", p.Name)
	setString(fields, "model", p.Model)
	setString(fields, "brand", p.Brand)
	setString(fields, "type", p.Type)
	setString(fields, "os", p.OS)
	if p.Compatible != nil {
		fields["compatible"] = *p.Compatible
	}
	setList(fields, "notes", p.Notes)
	setString(fields, "manufacturer_url", p.ManufacturerURL)
	setList(fields, "root_links", p.RootLinks)
	setString(fields, "price_range", p.PriceRange)
	setString(fields, "pogo_comp", p.PogoComp)
	setString(fields, "status", p.Status)
	return fields
}

func setString(fields map[string]interface{}, column string, v *string) {
	if v != nil {
		fields[column] = *v
	}
}

func setList(fields map[string]interface{}, column string, v *StringList) {
	if v != nil {
		fields[column] = *v
	}
}

package entities

import "time"

// PujaType is a catalog entry. DefaultPrice is the price a new booking is charged.
// NameLocal is the name in the devotee's language (usually Hindi).

type PujaType struct {
	ID                  string    `json:"id"`
	NameLocal           string    `json:"name_local"`
	NameEN              string    `json:"name_en"`
	Description         string    `json:"description,omitempty"`
	DetailedDescription string    `json:"detailed_description,omitempty"`
	Benefits            string    `json:"benefits,omitempty"`
	ImageURL            string    `json:"image_url,omitempty"`
	DurationMins        int       `json:"duration_minutes,omitempty"`
	MinPrice            float64   `json:"min_price"`
	MaxPrice            float64   `json:"max_price,omitempty"`
	DefaultPrice        float64   `json:"default_price"`
	IsVirtual           bool      `json:"is_virtual"`
	CreatedAt           time.Time `json:"created_at"`
}

// PujaTypeUpdate holds the catalog fields an admin wants to change; nil means keep.
type PujaTypeUpdate struct {
	NameLocal           *string
	NameEN              *string
	Description         *string
	DetailedDescription *string
	Benefits            *string
	ImageURL            *string
	DurationMins        *int
	MinPrice            *float64
	MaxPrice            *float64
	DefaultPrice        *float64
	IsVirtual           *bool
}

func (u PujaTypeUpdate) Apply(p PujaType) PujaType {
	if u.NameLocal != nil {
		p.NameLocal = *u.NameLocal
	}
	if u.NameEN != nil {
		p.NameEN = *u.NameEN
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.DetailedDescription != nil {
		p.DetailedDescription = *u.DetailedDescription
	}
	if u.Benefits != nil {
		p.Benefits = *u.Benefits
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.DurationMins != nil {
		p.DurationMins = *u.DurationMins
	}
	if u.MinPrice != nil {
		p.MinPrice = *u.MinPrice
	}
	if u.MaxPrice != nil {
		p.MaxPrice = *u.MaxPrice
	}
	if u.DefaultPrice != nil {
		p.DefaultPrice = *u.DefaultPrice
	}
	if u.IsVirtual != nil {
		p.IsVirtual = *u.IsVirtual
	}
	return p
}

func (u PujaTypeUpdate) IsEmpty() bool {
	return u == PujaTypeUpdate{}
}

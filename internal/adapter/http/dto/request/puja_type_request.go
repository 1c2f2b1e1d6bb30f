package request

import (
	"strings"

	"pandit_booking/internal/domain/entities"
)

type CreatePujaTypeRequest struct {
	NameLocal           string  `json:"name_local" binding:"required"`
	NameEN              string  `json:"name_en" binding:"required"`
	Description         string  `json:"description"`
	DetailedDescription string  `json:"detailed_description"`
	Benefits            string  `json:"benefits"`
	ImageURL            string  `json:"image_url"`
	DurationMins        int     `json:"duration_minutes"`
	DefaultPrice        float64 `json:"default_price"`
	MinPrice            float64 `json:"min_price"`
	MaxPrice            float64 `json:"max_price"`
	IsVirtual           bool    `json:"is_virtual"`
}

func (r CreatePujaTypeRequest) ToEntity() entities.PujaType {
	return entities.PujaType{
		NameLocal:           strings.TrimSpace(r.NameLocal),
		NameEN:              strings.TrimSpace(r.NameEN),
		Description:         strings.TrimSpace(r.Description),
		DetailedDescription: strings.TrimSpace(r.DetailedDescription),
		Benefits:            strings.TrimSpace(r.Benefits),
		ImageURL:            strings.TrimSpace(r.ImageURL),
		DurationMins:        r.DurationMins,
		DefaultPrice:        r.DefaultPrice,
		MinPrice:            r.MinPrice,
		MaxPrice:            r.MaxPrice,
		IsVirtual:           r.IsVirtual,
	}
}

// UpdatePujaTypeRequest is a partial update; absent fields keep their stored value.
type UpdatePujaTypeRequest struct {
	NameLocal           *string  `json:"name_local"`
	NameEN              *string  `json:"name_en"`
	Description         *string  `json:"description"`
	DetailedDescription *string  `json:"detailed_description"`
	Benefits            *string  `json:"benefits"`
	ImageURL            *string  `json:"image_url"`
	DurationMins        *int     `json:"duration_minutes"`
	DefaultPrice        *float64 `json:"default_price"`
	MinPrice            *float64 `json:"min_price"`
	MaxPrice            *float64 `json:"max_price"`
	IsVirtual           *bool    `json:"is_virtual"`
}

func (r UpdatePujaTypeRequest) ToUpdate() entities.PujaTypeUpdate {
	return entities.PujaTypeUpdate{
		NameLocal:           trimmed(r.NameLocal),
		NameEN:              trimmed(r.NameEN),
		Description:         trimmed(r.Description),
		DetailedDescription: trimmed(r.DetailedDescription),
		Benefits:            trimmed(r.Benefits),
		ImageURL:            trimmed(r.ImageURL),
		DurationMins:        r.DurationMins,
		DefaultPrice:        r.DefaultPrice,
		MinPrice:            r.MinPrice,
		MaxPrice:            r.MaxPrice,
		IsVirtual:           r.IsVirtual,
	}
}

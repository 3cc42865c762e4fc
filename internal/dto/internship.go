package dto

import (
	"time"

	"stagelink_backend/internal/search"
)

// ListInternshipsRequest binds the recognized listing query parameters.
// Validation here is deliberately light: the filter builder tolerates
// anything that survives binding.
type ListInternshipsRequest struct {
	SearchQuery string   `form:"searchQuery" json:"searchQuery"`
	Title       string   `form:"title" json:"title"`
	Description string   `form:"description" json:"description"`
	Sector      string   `form:"sector" json:"sector"`
	Type        string   `form:"type" json:"type" binding:"omitempty,oneof=onsite remote hybrid"`
	Duration    string   `form:"duration" json:"duration"`
	Company     string   `form:"company" json:"company"`
	MinSalary   *float64 `form:"minSalary" json:"minSalary"`
	MaxSalary   *float64 `form:"maxSalary" json:"maxSalary"`
	KeySkills   []string `form:"keySkills" json:"keySkills"`
	City        string   `form:"city" json:"city"`
	RadiusKm    *float64 `form:"radiusKm" json:"radiusKm"`
	ID          string   `form:"_id" json:"_id"`
	Page        int      `form:"page" json:"page"`
	Limit       int      `form:"limit" json:"limit" binding:"omitempty,max=100"`
	Sort        string   `form:"sort" json:"sort"`
}

// ToCriteria maps the request onto the filter builder's input.
func (r *ListInternshipsRequest) ToCriteria() search.Criteria {
	return search.Criteria{
		SearchQuery: r.SearchQuery,
		Title:       r.Title,
		Description: r.Description,
		Sector:      r.Sector,
		Type:        r.Type,
		Duration:    r.Duration,
		CompanyID:   r.Company,
		MinSalary:   r.MinSalary,
		MaxSalary:   r.MaxSalary,
		KeySkills:   r.KeySkills,
		City:        r.City,
		RadiusKm:    r.RadiusKm,
		ID:          r.ID,
		Sort:        r.Sort,
	}
}

type CreateInternshipRequest struct {
	Title       string     `json:"title" binding:"required" validate:"required,min=3,max=200"`
	Description string     `json:"description" validate:"max=10000"`
	Sector      string     `json:"sector" validate:"max=100"`
	Duration    string     `json:"duration" validate:"max=100"`
	Type        string     `json:"type" validate:"omitempty,oneof=onsite remote hybrid"`
	KeySkills   []string   `json:"keySkills" validate:"max=20,dive,min=1,max=60"`
	MinSalary   *float64   `json:"minSalary" validate:"omitempty,min=0"`
	MaxSalary   *float64   `json:"maxSalary" validate:"omitempty,min=0"`
	City        string     `json:"city" validate:"max=120"`
	Latitude    *float64   `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64   `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Deadline    *time.Time `json:"deadline"`
}

type UpdateInternshipRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=3,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=10000"`
	Sector      *string    `json:"sector" validate:"omitempty,max=100"`
	Duration    *string    `json:"duration" validate:"omitempty,max=100"`
	Type        *string    `json:"type" validate:"omitempty,oneof=onsite remote hybrid"`
	KeySkills   []string   `json:"keySkills" validate:"omitempty,max=20,dive,min=1,max=60"`
	MinSalary   *float64   `json:"minSalary" validate:"omitempty,min=0"`
	MaxSalary   *float64   `json:"maxSalary" validate:"omitempty,min=0"`
	City        *string    `json:"city" validate:"omitempty,max=120"`
	Latitude    *float64   `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64   `json:"longitude" validate:"omitempty,min=-180,max=180"`
	IsVisible   *bool      `json:"isVisible"`
	Deadline    *time.Time `json:"deadline"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type InternshipType string

const (
	InternshipTypeOnSite InternshipType = "onsite"
	InternshipTypeRemote InternshipType = "remote"
	InternshipTypeHybrid InternshipType = "hybrid"
)

type Internship struct {
	BaseModelWithDeleted
	CompanyID   string         `gorm:"type:uuid;not null;index" json:"companyId"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Sector      string         `gorm:"index" json:"sector"`
	Duration    string         `json:"duration"`
	Type        InternshipType `gorm:"type:varchar(20);column:type" json:"type"`
	KeySkills   datatypes.JSON `gorm:"type:jsonb" json:"keySkills"`
	MinSalary   *float64       `json:"minSalary"`
	MaxSalary   *float64       `json:"maxSalary"`
	City        string         `json:"city"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	IsVisible   bool           `gorm:"default:true;index" json:"isVisible"`
	Deadline    *time.Time     `json:"deadline,omitempty"`
	Views       int            `gorm:"default:0" json:"views"`

	Company *User `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

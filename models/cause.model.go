package models

import (
	"time"

	"gorm.io/gorm"
)

// Cause model. Raised tracks the running total of completed donations and is
// kept consistent transactionally on each completion plus a periodic
// reconciliation pass.
type Cause struct {
	gorm.Model
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"unique;not null" json:"slug"`
	Category    string     `gorm:"default:''" json:"category"`
	Description string     `gorm:"default:''" json:"description"`
	Goal        uint       `gorm:"not null" json:"goal"`
	Raised      uint       `gorm:"default:0" json:"raised"`
	ImageURL    string     `gorm:"default:''" json:"imageUrl"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsDeleted   bool       `gorm:"default:false" json:"-"`
}

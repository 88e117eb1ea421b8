package models

import (
	"gorm.io/gorm"
)

// User holds the minimal account row donations link back to. Registration and
// login live with the auth service; this table only carries identity and role
// for admin checks.
type User struct {
	gorm.Model
	Name      string `gorm:"default:''" json:"name"`
	Email     string `gorm:"unique;not null" json:"email"`
	Mobile    string `gorm:"default:''" json:"mobile"`
	Role      string `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	IsDeleted bool   `gorm:"default:false" json:"-"`
}

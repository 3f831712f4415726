package entity

import (
	"gorm.io/gorm"
)

// Category groups restaurants at the marketplace level (Pizza, Burgers, ...).
type Category struct {
	gorm.Model
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `json:"description"`
	ImageURL    string `gorm:"size:255" json:"imageUrl"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	Restaurants []Restaurant `json:"-"`
}

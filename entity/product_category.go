package entity

import (
	"gorm.io/gorm"
)

// ProductCategory groups products inside one restaurant's menu.
type ProductCategory struct {
	gorm.Model
	Name         string     `gorm:"size:100;not null" json:"name"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
	IsActive     bool       `gorm:"default:true" json:"isActive"`
	SortOrder    int        `gorm:"default:0" json:"sortOrder"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // cents
	ImageURL    string `gorm:"size:255" json:"imageUrl"`

	IsAvailable     bool `gorm:"default:true" json:"isAvailable"`
	IsActive        bool `gorm:"default:true" json:"isActive"`
	PreparationTime int  `gorm:"default:15" json:"preparationTime"` // minutes

	RestaurantID uint             `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant       `json:"-"`
	CategoryID   *uint            `json:"categoryId"`
	Category     *ProductCategory `gorm:"foreignKey:CategoryID" json:"-"`
}

package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID       uint       `gorm:"not null;index" json:"userId"`
	User         User       `json:"-"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
	OrderID      *uint      `json:"orderId"`
	Order        *Order     `json:"-"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `json:"comment"`
}

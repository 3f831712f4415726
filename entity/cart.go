package entity

import (
	"gorm.io/gorm"
)

// Cart is scoped to one (user, restaurant) pair; a user may keep separate
// open carts for different restaurants. The total is derived on read and
// never persisted.
type Cart struct {
	gorm.Model
	UserID       uint       `gorm:"not null;uniqueIndex:idx_carts_user_restaurant" json:"userId"`
	User         User       `json:"-"`
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_carts_user_restaurant" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Total sums the item totals.
func (c *Cart) Total() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.TotalPrice
	}
	return total
}

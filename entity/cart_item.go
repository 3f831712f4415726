package entity

import (
	"gorm.io/gorm"
)

// CartItem captures the product's price at add time; TotalPrice must equal
// Quantity * UnitPrice after every mutation.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"not null;index" json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"`

	Quantity   int    `gorm:"not null;default:1" json:"quantity"`
	UnitPrice  int64  `gorm:"not null" json:"unitPrice"` // cents
	TotalPrice int64  `gorm:"not null" json:"totalPrice"`
	Notes      string `json:"notes"`
}

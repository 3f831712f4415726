package entity

import (
	"gorm.io/gorm"
)

// OrderItem is an immutable snapshot of a cart line at checkout.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"`

	Quantity   int    `gorm:"not null;default:1" json:"quantity"`
	UnitPrice  int64  `gorm:"not null" json:"unitPrice"` // cents
	TotalPrice int64  `gorm:"not null" json:"totalPrice"`
	Notes      string `json:"notes"`
}

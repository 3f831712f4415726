package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusPreparing  = "preparing"
	OrderStatusReady      = "ready"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodDebitCard  = "debit_card"
	PaymentMethodPix        = "pix"
	PaymentMethodCash       = "cash"
)

// Order is a priced snapshot of a cart. Identity and money fields are fixed
// at creation; only Status, PaymentStatus and the two timestamps change
// afterwards. The delivery address is copied, not referenced, so later edits
// to the user's address book do not touch placed orders.
type Order struct {
	gorm.Model
	OrderNumber string `gorm:"size:20;uniqueIndex;not null" json:"orderNumber"`

	UserID       uint       `gorm:"not null;index" json:"userId"`
	User         User       `json:"-"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Status string `gorm:"size:20;not null;default:pending" json:"status"`

	Subtotal    int64 `gorm:"not null" json:"subtotal"` // cents
	DeliveryFee int64 `gorm:"not null;default:0" json:"deliveryFee"`
	Total       int64 `gorm:"not null" json:"total"`

	DeliveryStreet       string `gorm:"size:200;not null" json:"deliveryStreet"`
	DeliveryNumber       string `gorm:"size:20;not null" json:"deliveryNumber"`
	DeliveryComplement   string `gorm:"size:100" json:"deliveryComplement"`
	DeliveryNeighborhood string `gorm:"size:100;not null" json:"deliveryNeighborhood"`
	DeliveryCity         string `gorm:"size:100;not null" json:"deliveryCity"`
	DeliveryState        string `gorm:"size:50;not null" json:"deliveryState"`
	DeliveryZipCode      string `gorm:"size:20;not null" json:"deliveryZipCode"`

	Notes         string `json:"notes"`
	PaymentMethod string `gorm:"size:50;not null" json:"paymentMethod"`
	PaymentStatus string `gorm:"size:20;not null;default:pending" json:"paymentStatus"`

	ConfirmedAt *time.Time `json:"confirmedAt"`
	DeliveredAt *time.Time `json:"deliveredAt"`

	Items   []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Reviews []Review    `json:"-"`
}

// Terminal reports whether no further status transition is permitted.
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled
}

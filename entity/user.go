package entity

import (
	"gorm.io/gorm"
)

const (
	UserTypeCustomer   = "customer"
	UserTypeRestaurant = "restaurant"
	UserTypeAdmin      = "admin"
)

type User struct {
	gorm.Model
	Username string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Phone    string `gorm:"size:20" json:"phone"`
	FullName string `gorm:"size:120" json:"fullName"`
	UserType string `gorm:"size:20;not null;default:customer" json:"userType"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	// Relations, preload only when needed
	Addresses  []Address   `json:"-"`
	Orders     []Order     `json:"-"`
	Reviews    []Review    `json:"-"`
	Restaurant *Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
}

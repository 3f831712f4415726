package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	Street       string `gorm:"size:200;not null" json:"street"`
	Number       string `gorm:"size:20;not null" json:"number"`
	Complement   string `gorm:"size:100" json:"complement"`
	Neighborhood string `gorm:"size:100;not null" json:"neighborhood"`
	City         string `gorm:"size:100;not null" json:"city"`
	State        string `gorm:"size:50;not null" json:"state"`
	ZipCode      string `gorm:"size:20;not null" json:"zipCode"`
	IsDefault    bool   `json:"isDefault"`
}

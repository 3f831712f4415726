package entity

import (
	"gorm.io/gorm"
)

// Restaurant money fields (DeliveryFee, MinimumOrder) are cents.
type Restaurant struct {
	gorm.Model
	Name          string `gorm:"size:100;not null" json:"name"`
	Description   string `json:"description"`
	ImageURL      string `gorm:"size:255" json:"imageUrl"`
	CoverImageURL string `gorm:"size:255" json:"coverImageUrl"`
	Phone         string `gorm:"size:20" json:"phone"`
	Email         string `gorm:"size:120" json:"email"`

	Street       string   `gorm:"size:200;not null" json:"street"`
	Number       string   `gorm:"size:20;not null" json:"number"`
	Complement   string   `gorm:"size:100" json:"complement"`
	Neighborhood string   `gorm:"size:100;not null" json:"neighborhood"`
	City         string   `gorm:"size:100;not null" json:"city"`
	State        string   `gorm:"size:50;not null" json:"state"`
	ZipCode      string   `gorm:"size:20;not null" json:"zipCode"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	IsOnline     bool    `gorm:"default:true" json:"isOnline"`
	IsActive     bool    `gorm:"default:true" json:"isActive"`
	DeliveryFee  int64   `gorm:"default:0" json:"deliveryFee"`
	MinimumOrder int64   `gorm:"default:0" json:"minimumOrder"`
	DeliveryTime int     `gorm:"default:30" json:"deliveryTime"` // minutes
	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"totalReviews"`

	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"-"`
	OwnerID    uint      `gorm:"not null;index" json:"ownerId"`
	Owner      User      `gorm:"foreignKey:OwnerID" json:"-"`

	ProductCategories []ProductCategory `json:"-"`
	Products          []Product         `json:"-"`
	Orders            []Order           `json:"-"`
	Reviews           []Review          `json:"-"`
}

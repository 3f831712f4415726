package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/pkg/apperr"
	"github.com/wbonfim/DeliveryApp/repository"
)

// CartService keeps one open cart per (user, restaurant) pair and preserves
// total_price = quantity * unit_price across every mutation.
type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	RestRepo    *repository.RestaurantRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository, rr *repository.RestaurantRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr, RestRepo: rr}
}

type AddToCartIn struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	ProductID    uint   `json:"productId" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	Notes        string `json:"notes"`
}

// CartOut is the wire shape of a cart: the persisted rows plus the derived
// total, which is never stored.
type CartOut struct {
	entity.Cart
	Total int64 `json:"total"`
}

func (s *CartService) Get(userID, restaurantID uint) (*CartOut, error) {
	c, err := s.CartRepo.GetCartWithItems(userID, restaurantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &CartOut{Cart: *c, Total: c.Total()}, nil
}

// AddItem snapshots the product's current price into a new line, or merges
// quantity into an existing line for the same product.
func (s *CartService) AddItem(userID uint, in *AddToCartIn) error {
	if in.Quantity < 1 {
		return apperr.ErrInvalidQuantity
	}

	rest, err := s.RestRepo.FindByID(in.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "restaurant not found")
		}
		return apperr.Internal(err)
	}

	p, err := s.ProductRepo.GetBasics(in.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "product not found")
		}
		return apperr.Internal(err)
	}
	if !p.IsAvailable || !p.IsActive || p.RestaurantID != rest.ID {
		return apperr.ErrProductUnavailable
	}

	line := &entity.CartItem{
		ProductID:  p.ID,
		Quantity:   in.Quantity,
		UnitPrice:  p.Price,
		TotalPrice: p.Price * int64(in.Quantity),
		Notes:      in.Notes,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetOrCreateCart(tx, userID, in.RestaurantID)
		if err != nil {
			return err
		}
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// UpdateItem changes the quantity; zero or less removes the line.
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.CartRepo.FindItemForUser(tx, userID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrCartItemNotFound
			}
			return apperr.Internal(err)
		}
		if quantity <= 0 {
			if err := s.CartRepo.DeleteItem(tx, item.ID); err != nil {
				return apperr.Internal(err)
			}
			return nil
		}
		if err := s.CartRepo.UpdateItemQuantity(tx, item.ID, quantity); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
}

// RemoveItem is idempotent: removing an absent line is a no-op success.
func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.CartRepo.FindItemForUser(tx, userID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return apperr.Internal(err)
		}
		if err := s.CartRepo.DeleteItem(tx, item.ID); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
}

// Clear deletes the cart and its items; clearing an absent cart succeeds.
func (s *CartService) Clear(userID, restaurantID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var c entity.Cart
		err := tx.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&c).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return apperr.Internal(err)
		}
		if err := s.CartRepo.DeleteCart(tx, c.ID); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
}

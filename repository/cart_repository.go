package repository

import (
	"errors"

	"github.com/wbonfim/DeliveryApp/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetCartWithItems returns the user's cart for one restaurant. A missing
// cart comes back as an empty value, not an error, so callers can render an
// empty cart.
func (r *CartRepository) GetCartWithItems(userID, restaurantID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, RestaurantID: restaurantID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateCart finds the (user, restaurant) cart or inserts it. The
// composite unique index keeps concurrent creators down to one winner; the
// loser re-reads.
func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID, restaurantID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c = entity.Cart{UserID: userID, RestaurantID: restaurantID}
	if createErr := tx.Create(&c).Error; createErr != nil {
		// lost the race: someone else created it
		if findErr := tx.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
			First(&c).Error; findErr != nil {
			return nil, createErr
		}
	}
	return &c, nil
}

// UpsertItem merges into an existing line for the same product or appends a
// new one. TotalPrice is re-derived on every path.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, row.ProductID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += row.Quantity
		exist.TotalPrice = int64(exist.Quantity) * exist.UnitPrice
		if row.Notes != "" {
			exist.Notes = row.Notes
		}
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// FindItemForUser loads a cart item only when it sits in one of the user's
// carts.
func (r *CartRepository) FindItemForUser(tx *gorm.DB, userID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ? AND deleted_at IS NULL)",
		itemID, userID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItemQuantity re-derives total_price in the same statement so the
// invariant holds even under concurrent writers.
func (r *CartRepository) UpdateItemQuantity(tx *gorm.DB, itemID uint, quantity int) error {
	return tx.Model(&entity.CartItem{}).Where("id = ?", itemID).
		Updates(map[string]any{
			"quantity":    quantity,
			"total_price": gorm.Expr("unit_price * ?", quantity),
		}).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Where("id = ?", itemID).Delete(&entity.CartItem{}).Error
}

// DeleteCart removes the cart and its items for good. Carts are working
// state and the order snapshot is the durable record; a soft-delete
// tombstone would keep occupying the (user_id, restaurant_id) unique slot
// and block the user's next cart for the same restaurant.
func (r *CartRepository) DeleteCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Cart{}, cartID).Error
}

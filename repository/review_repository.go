package repository

import (
	"github.com/wbonfim/DeliveryApp/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) ListForRestaurant(restID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var out []entity.Review
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ListForUser(userID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var out []entity.Review
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

// ExistsForOrder guards against a second review on the same order.
func (r *ReviewRepository) ExistsForOrder(userID, orderID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Review{}).
		Where("user_id = ? AND order_id = ?", userID, orderID).Count(&cnt).Error
	return cnt > 0, err
}

package repository

import (
	"github.com/wbonfim/DeliveryApp/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// RestaurantFilter narrows the public listing.
type RestaurantFilter struct {
	CategoryID uint
	OnlineOnly bool
}

func (r *RestaurantRepository) FindAll(f RestaurantFilter) ([]entity.Restaurant, error) {
	q := r.DB.Where("is_active = ?", true)
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.OnlineOnly {
		q = q.Where("is_online = ?", true)
	}
	var rests []entity.Restaurant
	err := q.Order("rating DESC, id").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByOwner(ownerID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("owner_id = ?", ownerID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner_id = ?", restID, userID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *RestaurantRepository) SetOnline(restID uint, online bool) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", restID).
		Update("is_online", online).Error
}

func (r *RestaurantRepository) SetActive(restID uint, active bool) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", restID).
		Update("is_active", active).Error
}

// ApplyReview folds one new rating into the running average. Runs inside
// the caller's transaction together with the review insert.
func (r *RestaurantRepository) ApplyReview(tx *gorm.DB, restID uint, rating int) error {
	var rest entity.Restaurant
	if err := tx.First(&rest, restID).Error; err != nil {
		return err
	}
	newTotal := rest.TotalReviews + 1
	newRating := (rest.Rating*float64(rest.TotalReviews) + float64(rating)) / float64(newTotal)
	return tx.Model(&entity.Restaurant{}).Where("id = ?", restID).
		Updates(map[string]any{"rating": newRating, "total_reviews": newTotal}).Error
}

// ---------------- Categories ----------------

func (r *RestaurantRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("is_active = ?", true).Order("name").Find(&out).Error
	return out, err
}

package repository

import (
	"github.com/wbonfim/DeliveryApp/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// GetBasics loads only the fields the cart engine needs to price a line.
func (r *ProductRepository) GetBasics(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.Select("id, price, restaurant_id, is_available, is_active").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListForRestaurant returns the customer-facing menu: active products only,
// grouped by category sort order.
func (r *ProductRepository) ListForRestaurant(restID uint, includeInactive bool) ([]entity.Product, error) {
	q := r.DB.Where("restaurant_id = ?", restID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var out []entity.Product
	err := q.Order("category_id, id").Find(&out).Error
	return out, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Save(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(restID, productID uint) error {
	return r.DB.Where("id = ? AND restaurant_id = ?", productID, restID).
		Delete(&entity.Product{}).Error
}

// ---------------- Product categories ----------------

func (r *ProductRepository) ListCategoriesForRestaurant(restID uint) ([]entity.ProductCategory, error) {
	var out []entity.ProductCategory
	err := r.DB.Where("restaurant_id = ? AND is_active = ?", restID, true).
		Order("sort_order, id").Find(&out).Error
	return out, err
}

func (r *ProductRepository) CreateCategory(pc *entity.ProductCategory) error {
	return r.DB.Create(pc).Error
}

func (r *ProductRepository) SaveCategory(pc *entity.ProductCategory) error {
	return r.DB.Save(pc).Error
}

func (r *ProductRepository) GetCategory(restID, categoryID uint) (*entity.ProductCategory, error) {
	var pc entity.ProductCategory
	err := r.DB.Where("id = ? AND restaurant_id = ?", categoryID, restID).First(&pc).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

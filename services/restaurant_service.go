package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/pkg/apperr"
	"github.com/wbonfim/DeliveryApp/repository"
)

// RestaurantService covers the public catalog and the owner's management
// surface (restaurant profile, product categories, products).
type RestaurantService struct {
	DB          *gorm.DB
	Repo        *repository.RestaurantRepository
	ProductRepo *repository.ProductRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, productRepo *repository.ProductRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, ProductRepo: productRepo}
}

func (s *RestaurantService) ListCategories() ([]entity.Category, error) {
	out, err := s.Repo.ListCategories()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (s *RestaurantService) List(f repository.RestaurantFilter) ([]entity.Restaurant, error) {
	out, err := s.Repo.FindAll(f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

// RestaurantDetail bundles the profile with the customer-facing menu.
type RestaurantDetail struct {
	Restaurant entity.Restaurant        `json:"restaurant"`
	Categories []entity.ProductCategory `json:"categories"`
	Products   []entity.Product         `json:"products"`
}

func (s *RestaurantService) Detail(restID uint) (*RestaurantDetail, error) {
	rest, err := s.Repo.FindByID(restID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "restaurant not found")
		}
		return nil, apperr.Internal(err)
	}
	categories, err := s.ProductRepo.ListCategoriesForRestaurant(restID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	products, err := s.ProductRepo.ListForRestaurant(restID, false)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &RestaurantDetail{Restaurant: *rest, Categories: categories, Products: products}, nil
}

type RestaurantIn struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	CoverImageURL string   `json:"coverImageUrl"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Street        string   `json:"street" binding:"required"`
	Number        string   `json:"number" binding:"required"`
	Complement    string   `json:"complement"`
	Neighborhood  string   `json:"neighborhood" binding:"required"`
	City          string   `json:"city" binding:"required"`
	State         string   `json:"state" binding:"required"`
	ZipCode       string   `json:"zipCode" binding:"required"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	DeliveryFee   int64    `json:"deliveryFee" binding:"min=0"`
	MinimumOrder  int64    `json:"minimumOrder" binding:"min=0"`
	DeliveryTime  int      `json:"deliveryTime" binding:"min=0"`
	CategoryID    *uint    `json:"categoryId"`
}

// Create registers the owner's restaurant; one per owner.
func (s *RestaurantService) Create(ownerID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	if _, err := s.Repo.FindByOwner(ownerID); err == nil {
		return nil, apperr.New(apperr.KindConflict, "user already owns a restaurant")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	rest := &entity.Restaurant{
		Name:          in.Name,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		CoverImageURL: in.CoverImageURL,
		Phone:         in.Phone,
		Email:         in.Email,
		Street:        in.Street,
		Number:        in.Number,
		Complement:    in.Complement,
		Neighborhood:  in.Neighborhood,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		DeliveryFee:   in.DeliveryFee,
		MinimumOrder:  in.MinimumOrder,
		DeliveryTime:  in.DeliveryTime,
		CategoryID:    in.CategoryID,
		OwnerID:       ownerID,
		IsOnline:      true,
		IsActive:      true,
	}
	if rest.DeliveryTime == 0 {
		rest.DeliveryTime = 30
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, apperr.Internal(err)
	}
	return rest, nil
}

func (s *RestaurantService) Update(ownerID, restID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	rest, err := s.ownedRestaurant(ownerID, restID)
	if err != nil {
		return nil, err
	}

	rest.Name = in.Name
	rest.Description = in.Description
	rest.ImageURL = in.ImageURL
	rest.CoverImageURL = in.CoverImageURL
	rest.Phone = in.Phone
	rest.Email = in.Email
	rest.Street = in.Street
	rest.Number = in.Number
	rest.Complement = in.Complement
	rest.Neighborhood = in.Neighborhood
	rest.City = in.City
	rest.State = in.State
	rest.ZipCode = in.ZipCode
	rest.Latitude = in.Latitude
	rest.Longitude = in.Longitude
	rest.DeliveryFee = in.DeliveryFee
	rest.MinimumOrder = in.MinimumOrder
	if in.DeliveryTime > 0 {
		rest.DeliveryTime = in.DeliveryTime
	}
	rest.CategoryID = in.CategoryID

	if err := s.Repo.Save(rest); err != nil {
		return nil, apperr.Internal(err)
	}
	return rest, nil
}

func (s *RestaurantService) SetOnline(ownerID, restID uint, online bool) error {
	if _, err := s.ownedRestaurant(ownerID, restID); err != nil {
		return err
	}
	if err := s.Repo.SetOnline(restID, online); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// SetActive is the admin switch removing a restaurant from the marketplace.
func (s *RestaurantService) SetActive(restID uint, active bool) error {
	if _, err := s.Repo.FindByID(restID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "restaurant not found")
		}
		return apperr.Internal(err)
	}
	if err := s.Repo.SetActive(restID, active); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ---------------- Products ----------------

type ProductIn struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Price           int64  `json:"price" binding:"min=0"`
	ImageURL        string `json:"imageUrl"`
	IsAvailable     *bool  `json:"isAvailable"`
	PreparationTime int    `json:"preparationTime" binding:"min=0"`
	CategoryID      *uint  `json:"categoryId"`
}

func (s *RestaurantService) CreateProduct(ownerID, restID uint, in *ProductIn) (*entity.Product, error) {
	if _, err := s.ownedRestaurant(ownerID, restID); err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		if _, err := s.ProductRepo.GetCategory(restID, *in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.KindNotFound, "product category not found")
			}
			return nil, apperr.Internal(err)
		}
	}

	p := &entity.Product{
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		ImageURL:        in.ImageURL,
		IsAvailable:     true,
		IsActive:        true,
		PreparationTime: in.PreparationTime,
		RestaurantID:    restID,
		CategoryID:      in.CategoryID,
	}
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
	if p.PreparationTime == 0 {
		p.PreparationTime = 15
	}
	if err := s.ProductRepo.Create(p); err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *RestaurantService) UpdateProduct(ownerID, restID, productID uint, in *ProductIn) (*entity.Product, error) {
	if _, err := s.ownedRestaurant(ownerID, restID); err != nil {
		return nil, err
	}

	p, err := s.ProductRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "product not found")
		}
		return nil, apperr.Internal(err)
	}
	if p.RestaurantID != restID {
		return nil, apperr.New(apperr.KindNotFound, "product not found")
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.ImageURL = in.ImageURL
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
	if in.PreparationTime > 0 {
		p.PreparationTime = in.PreparationTime
	}
	p.CategoryID = in.CategoryID

	if err := s.ProductRepo.Save(p); err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *RestaurantService) DeleteProduct(ownerID, restID, productID uint) error {
	if _, err := s.ownedRestaurant(ownerID, restID); err != nil {
		return err
	}
	if err := s.ProductRepo.Delete(restID, productID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

type ProductCategoryIn struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

func (s *RestaurantService) CreateProductCategory(ownerID, restID uint, in *ProductCategoryIn) (*entity.ProductCategory, error) {
	if _, err := s.ownedRestaurant(ownerID, restID); err != nil {
		return nil, err
	}
	pc := &entity.ProductCategory{
		Name:         in.Name,
		RestaurantID: restID,
		IsActive:     true,
		SortOrder:    in.SortOrder,
	}
	if err := s.ProductRepo.CreateCategory(pc); err != nil {
		return nil, apperr.Internal(err)
	}
	return pc, nil
}

func (s *RestaurantService) ownedRestaurant(ownerID, restID uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(restID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "restaurant not found")
		}
		return nil, apperr.Internal(err)
	}
	if rest.OwnerID != ownerID {
		return nil, apperr.New(apperr.KindForbidden, "forbidden")
	}
	return rest, nil
}

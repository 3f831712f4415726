package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wbonfim/DeliveryApp/configs"
	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewRestaurantRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewUserRepository(db))
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(db,
		repository.NewReviewRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewOrderRepository(db))
}

func seedUser(t *testing.T, db *gorm.DB, username, userType string) *entity.User {
	t.Helper()
	u := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		UserType: userType,
		IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) *entity.Address {
	t.Helper()
	a := &entity.Address{
		UserID:       userID,
		Street:       "Rua das Flores",
		Number:       "100",
		Neighborhood: "Centro",
		City:         "Sao Paulo",
		State:        "SP",
		ZipCode:      "01000-000",
		IsDefault:    true,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func seedRestaurant(t *testing.T, db *gorm.DB, ownerID uint, fee, minimum int64) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name:         "Cantina da Praca",
		Street:       "Av. Paulista",
		Number:       "1500",
		Neighborhood: "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
		ZipCode:      "01310-000",
		IsOnline:     true,
		IsActive:     true,
		DeliveryFee:  fee,
		MinimumOrder: minimum,
		OwnerID:      ownerID,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedProduct(t *testing.T, db *gorm.DB, restID uint, name string, price int64) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:         name,
		Price:        price,
		IsAvailable:  true,
		IsActive:     true,
		RestaurantID: restID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedDeliveredOrder(t *testing.T, db *gorm.DB, userID, restID uint, number string) *entity.Order {
	t.Helper()
	o := &entity.Order{
		OrderNumber:          number,
		UserID:               userID,
		RestaurantID:         restID,
		Status:               entity.OrderStatusDelivered,
		Subtotal:             2500,
		DeliveryFee:          590,
		Total:                3090,
		DeliveryStreet:       "Rua das Flores",
		DeliveryNumber:       "100",
		DeliveryNeighborhood: "Centro",
		DeliveryCity:         "Sao Paulo",
		DeliveryState:        "SP",
		DeliveryZipCode:      "01000-000",
		PaymentMethod:        entity.PaymentMethodPix,
		PaymentStatus:        entity.PaymentStatusPaid,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

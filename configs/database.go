package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wbonfim/DeliveryApp/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// SetDB swaps the active connection; used by tests.
func SetDB(d *gorm.DB) {
	db = d
}

// Connect opens the database named by the config. sqlite is the dev/test
// default, postgres the production driver.
func Connect(cfg *Config) error {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(d *gorm.DB) error {
	return d.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Category{}, &entity.Restaurant{},
		&entity.ProductCategory{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
	)
}

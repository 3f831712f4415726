package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/wbonfim/DeliveryApp/entity"
)

// SeedAdmin creates the first admin account from ADMIN_* env, once.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	username := getEnv("ADMIN_USERNAME", "admin")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		FullName: "Administrator",
		UserType: entity.UserTypeAdmin,
		IsActive: true,
	}
	return db.Create(&admin).Error
}

// SeedCategories inserts the marketplace categories when missing.
func SeedCategories() error {
	categories := []entity.Category{
		{Name: "Lanches", Description: "Hamburgueres, sanduiches e lanches"},
		{Name: "Pizza", Description: "Pizzas tradicionais e especiais"},
		{Name: "Japonesa", Description: "Sushi, sashimi e comida japonesa"},
		{Name: "Italiana", Description: "Massas, risotos e pratos italianos"},
		{Name: "Brasileira", Description: "Pratos tipicos brasileiros"},
		{Name: "Doces", Description: "Sobremesas, bolos e doces"},
		{Name: "Bebidas", Description: "Refrigerantes, sucos e bebidas"},
	}
	for _, c := range categories {
		var out entity.Category
		if err := db.Where(entity.Category{Name: c.Name}).
			Attrs(c).FirstOrCreate(&out).Error; err != nil {
			return err
		}
	}
	return nil
}

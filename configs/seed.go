package configs

import (
	"log"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog fills an empty database with a small demo catalog.
func SeedCatalog() error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rest := entity.Restaurant{
		Name:        "Demo Bistro",
		Address:     "1 Demo Street",
		Description: "Seeded sample restaurant",
	}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	dishes := []entity.Dish{
		{RestaurantID: rest.ID, Name: "Margherita", Price: decimal.RequireFromString("10.00"), Weight: 450},
		{RestaurantID: rest.ID, Name: "Lemonade", Price: decimal.RequireFromString("5.00"), Weight: 330},
	}
	return db.Create(&dishes).Error
}

package configs

import (
	"log"

	"github.com/mustafa3m/TastyTable-final-1/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the initial admin account. Idempotent: does nothing
// once any user exists.
func SeedAdmin(cfg *Config) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         "Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("seeded admin account:", admin.Username)
	return nil
}

// SeedMenu loads the demo catalog when the menu table is empty.
func SeedMenu() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Margherita Pizza", Description: "Classic pizza", Price: decimal.NewFromInt(1200), IsAvailable: true},
		{Name: "Chicken Biryani", Description: "Spicy and flavorful", Price: decimal.NewFromInt(900), IsAvailable: true},
		{Name: "Beef Burger", Description: "Grilled patty", Price: decimal.NewFromInt(750), IsAvailable: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	log.Println("seeded demo menu:", len(items), "items")
	return nil
}

// Command seed populates the database with the demo accounts and catalog.
package main

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/config"
	"storefront/internal/hash"
	"storefront/internal/models"
)

func main() {
	cfg := config.Load()

	db, err := openDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Clear existing data
	db.Where("1 = 1").Delete(&models.CartItem{})
	db.Where("1 = 1").Delete(&models.Product{})
	db.Where("1 = 1").Delete(&models.User{})

	adminPassword, err := hash.HashPassword("admin123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	userPassword, err := hash.HashPassword("user123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	users := []models.User{
		{Username: "admin", Email: "admin@test.com", Password: adminPassword, IsAdmin: true},
		{Username: "user", Email: "user@test.com", Password: userPassword},
	}
	products := []models.Product{
		{Name: "Laptop", Description: "High-Performance Laptop", Price: 999.99, Quantity: 10},
		{Name: "Desktop PC", Description: "Desktop Personal Computer", Price: 799.99, Quantity: 10},
		{Name: "Monitor", Description: "Computer Monitor", Price: 149.99, Quantity: 10},
		{Name: "TV", Description: "High-End 65-inch Television", Price: 1249.99, Quantity: 10},
	}

	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", users[i].Username, err)
		}
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product %s: %v", products[i].Name, err)
		}
	}

	log.Println("Database seeded successfully.")
}

func openDatabase(databaseURL string) (*gorm.DB, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
}

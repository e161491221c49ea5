// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/agriconnect/agriconnect-backend/internal/models"
)

type demoUser struct {
	username string
	password string
	name     string
	role     models.UserRole
}

// Demo accounts, one per role.
var demoUsers = []demoUser{
	{"farmer", "farmer123", "Rajesh Kumar", models.UserRoleFarmer},
	{"helper", "helper123", "Amit Singh", models.UserRoleHelper},
	{"vendor", "vendor123", "Priya Traders", models.UserRoleVendor},
	{"admin", "admin123", "System Admin", models.UserRoleAdmin},
}

// Seed initial data
func SeedInitialData(db *gorm.DB, seedProducts bool) error {
	log.Println("Seeding initial data...")

	for _, d := range demoUsers {
		var count int64
		db.Model(&models.User{}).Where("username = ?", d.username).Count(&count)
		if count > 0 {
			continue
		}

		user := &models.User{
			Username: d.username,
			Name:     d.name,
			Role:     d.role,
		}
		if err := user.SetPassword(d.password); err != nil {
			return fmt.Errorf("failed to set password for %s: %w", d.username, err)
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create demo user %s: %w", d.username, err)
		}
	}

	if seedProducts {
		if err := seedSampleProducts(db); err != nil {
			return err
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}

// seedSampleProducts lists a starter catalog under the demo farmer so a fresh
// install has something to browse. Skipped if any product already exists.
func seedSampleProducts(db *gorm.DB) error {
	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	if productCount > 0 {
		return nil
	}

	var farmer models.User
	if err := db.Where("username = ? AND role = ?", "farmer", models.UserRoleFarmer).First(&farmer).Error; err != nil {
		return fmt.Errorf("demo farmer not found: %w", err)
	}

	samples := []models.Product{
		{
			Name:        "Organic Wheat",
			Category:    models.CategoryGrains,
			Quantity:    500,
			Price:       28,
			Location:    "punjab",
			Organic:     true,
			Description: "Premium quality organic wheat from Punjab farms. Freshly harvested.",
		},
		{
			Name:        "Basmati Rice",
			Category:    models.CategoryGrains,
			Quantity:    300,
			Price:       45,
			Location:    "haryana",
			Organic:     false,
			Description: "Traditional Basmati rice with long grains and aromatic flavor.",
		},
		{
			Name:        "Fresh Tomatoes",
			Category:    models.CategoryVegetables,
			Quantity:    200,
			Price:       20,
			Location:    "maharashtra",
			Organic:     true,
			Description: "Farm-fresh organic tomatoes, perfect for cooking and salads.",
		},
		{
			Name:        "Turmeric Powder",
			Category:    models.CategorySpices,
			Quantity:    50,
			Price:       180,
			Location:    "karnataka",
			Organic:     true,
			Description: "Pure organic turmeric powder with high curcumin content.",
		},
		{
			Name:        "Green Peas",
			Category:    models.CategoryVegetables,
			Quantity:    150,
			Price:       35,
			Location:    "up",
			Organic:     false,
			Description: "Fresh green peas, harvested this season.",
		},
		{
			Name:        "Mangoes (Alphonso)",
			Category:    models.CategoryFruits,
			Quantity:    100,
			Price:       120,
			Location:    "maharashtra",
			Organic:     true,
			Description: "Premium Alphonso mangoes, organic certified.",
		},
	}

	for i := range samples {
		samples[i].FarmerID = farmer.ID
		samples[i].FarmerName = farmer.Name
		if err := db.Create(&samples[i]).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", samples[i].Name, err)
		}
	}

	log.Printf("Seeded %d sample products", len(samples))
	return nil
}

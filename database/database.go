package database

import (
	"fmt"
	"log"
	"os"

	"portfolio-app/internal/domain/catalog"
	"portfolio-app/internal/domain/orders"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// orders (upstream of the catalog invariant)
		&orders.Order{},
		&orders.Shipment{},

		// catalog
		&catalog.Artwork{},
		&catalog.Image{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

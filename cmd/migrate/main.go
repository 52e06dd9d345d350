package main

import (
	"log"
	"os"

	"storefront-be/internal/model"
	"storefront-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Step 1: Setting up extensions...")
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	log.Println("Step 2: Running AutoMigrate for catalog and cart tables...")
	models := []interface{}{
		&model.Product{},
		&model.ProductVariant{},
		&model.ProductImage{},
		&model.Cart{},
		&model.CartLine{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Step 3: Creating indexes...")
	postMigrationSQL := []string{
		// Case-insensitive lookups used by association filters.
		`CREATE INDEX IF NOT EXISTS idx_products_lower_type ON products (LOWER(product_type));`,
		`CREATE INDEX IF NOT EXISTS idx_products_available ON products (available_for_sale) WHERE deleted_at IS NULL;`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed.")
}

package main

import (
	"context"
	"log"
	"os"

	"storefront-be/internal/repository/specification"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
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

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	repo := uow.ProductRepository()

	color.Cyan("Seeding demo catalog...\n")

	created, skipped := 0, 0
	for _, p := range demoCatalog() {
		existing, err := repo.FindOne(ctx, specification.ByHandle{Handle: *p.Handle})
		if err != nil {
			color.Red("Failed to look up %s: %v", *p.Handle, err)
			os.Exit(1)
		}
		if existing != nil {
			color.Yellow("  skip    %-28s already present", *p.Handle)
			skipped++
			continue
		}

		product := p
		if err := repo.Create(ctx, &product); err != nil {
			color.Red("  failed  %-28s %v", *p.Handle, err)
			os.Exit(1)
		}
		color.Green("  created %-28s %d variant(s)", *p.Handle, len(p.Variants))
		created++
	}

	count, err := repo.Count(ctx)
	if err != nil {
		color.Red("Failed to count products: %v", err)
		os.Exit(1)
	}
	color.Cyan("\nDone: %d created, %d skipped, %d products in catalog", created, skipped, count)
}

// One-shot dataset loader. Reads the CSV files from DATA_DIR (default ./data),
// replaces the catalog tables and recomputes rating aggregates, then exits.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"kyotabi/internal/infra"
	"kyotabi/internal/repositories"
	"kyotabi/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}

	db := infra.InitDatabase()
	defer infra.CloseDatabase(db)

	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	datasets := services.NewDatasetService(
		repositories.NewRestaurantRepository(db),
		repositories.NewHotelRepository(db),
		repositories.NewAttractionRepository(db),
		repositories.NewReviewRepository(db),
		repositories.NewBookingRepository(db),
	)

	if err := datasets.ImportAll(context.Background(), dir); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Println("Dataset import complete")
}

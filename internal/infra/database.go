package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kyotabi/internal/models/db_models"
)

// InitDatabase opens the store. The datasets ship as SQLite, so that is the
// default; set DB_DRIVER=postgres with POSTGRES_URL for a shared deployment.
func InitDatabase() *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dsn := os.Getenv("POSTGRES_URL")
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "kyoto.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Session{},
		&db_models.Favorite{},
		&db_models.Trip{},
		&db_models.TripItem{},
		&db_models.Restaurant{},
		&db_models.Hotel{},
		&db_models.Attraction{},
		&db_models.Review{},
		&db_models.Booking{},
	)
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

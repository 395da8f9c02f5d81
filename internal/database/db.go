package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"foodshare-backend/internal/config"
	"foodshare-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open opens (creating if necessary) the SQLite database at path and runs
// the migration. Calling it against an existing file is a no-op beyond the
// cheap existence checks AutoMigrate performs, so it is safe on every
// startup. Tests pass ":memory:".
func Open(path string) (*gorm.DB, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("database directory could not be created: %w", err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database could not be opened: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the four tables with their constraints when absent.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Provider{},
		&models.Receiver{},
		&models.FoodListing{},
		&models.Claim{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func Init(cfg *config.Config) {
	var err error
	DB, err = Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}
	log.Println("Database ready:", cfg.DatabasePath)
}

package config

import (
	"fmt"
	"os"

	"github.com/cardforge/cardforge-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var Database *gorm.DB

// Connect opens the postgres connection from DB_URL and migrates the
// index, ref and detail tables.
func Connect() error {
	var err error
	dbURL := os.Getenv("DB_URL")
	Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	err = Database.AutoMigrate(
		&models.UserIndex{},
		&models.FlashcardSetRef{},
		&models.FlashcardSetDetail{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	return nil
}

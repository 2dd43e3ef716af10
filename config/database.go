package config

import (
	"github.com/smartstudy/flashcards-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the SQLite database at path and migrates the schema.
// The handle is returned rather than stored in a package global so
// handlers receive it explicitly.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Deck{}, &models.Flashcard{}); err != nil {
		return nil, err
	}

	return db, nil
}

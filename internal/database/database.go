package database

import (
	"log"

	"github.com/adventureland-park/ticket-office/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the SQLite database backing the collection store. Table
// migration happens in store.Open, which owns the durable representation.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
)

// OpenDB opens (or creates) the sqlite database and keeps the schema
// updated via AutoMigrate.
func OpenDB(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&battle.Record{}, &battle.Profile{}); err != nil {
		return nil, err
	}
	return db, nil
}

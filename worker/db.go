package worker

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Init opens (or creates) the upload-history database at path and migrates
// the schema. History is opt-in: until Init succeeds, Record and the fetch
// helpers are no-ops.
func Init(path string) error {
	handle, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return fmt.Errorf("opening history db: %w", err)
	}

	if err := handle.AutoMigrate(&Upload{}); err != nil {
		return fmt.Errorf("migrating history schema: %w", err)
	}

	db = handle
	return nil
}

// Enabled reports whether a history database has been opened.
func Enabled() bool {
	return db != nil
}

package testutils

import (
	"testing"

	"sheet-music-backend/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private, migrated in-memory SQLite database that is closed when the test ends.
// It needs no Docker, so service and handler tests can run against a real store.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := database.Initialize(dsn, &database.Options{
		Driver:   database.DriverSQLite,
		LogLevel: logger.Silent,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

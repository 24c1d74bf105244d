//go:build !integration

package repository

import (
	"testing"

	"sheet-music-backend/internal/testutils"

	"gorm.io/gorm"
)

// newTestDB returns a fresh in-memory store for each test
func newTestDB(t *testing.T) *gorm.DB {
	return testutils.NewSQLiteDB(t)
}

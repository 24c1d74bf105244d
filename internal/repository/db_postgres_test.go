//go:build integration
// +build integration

package repository

import (
	"testing"

	"sheet-music-backend/internal/testutils"

	"gorm.io/gorm"
)

// newTestDB returns the shared Postgres container with all tables truncated
func newTestDB(t *testing.T) *gorm.DB {
	base := testutils.SetupTestSuite(t)
	base.CleanTestDB()
	return base.DB
}

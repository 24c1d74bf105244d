package database

import (
	"path/filepath"
	"testing"

	"sheet-music-backend/internal/database/models"
	apperrors "sheet-music-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := Initialize(dsn, &Options{Driver: DriverSQLite})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestInitializeSQLiteMigratesSchema(t *testing.T) {
	db := openMemory(t)

	m := db.Migrator()
	for _, table := range []string{"users", "sessions", "groups", "sheet_music"} {
		assert.True(t, m.HasTable(table), "missing table %s", table)
	}
	assert.NoError(t, Ping(db))
}

func TestInitializeRejectsUnknownDriver(t *testing.T) {
	db, err := Initialize("whatever", &Options{Driver: "oracle"})

	assert.Nil(t, db)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedDatabaseDriver)
}

func TestDuplicateKeyIsTranslated(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, db.Create(&models.Group{Name: "Coro Norte"}).Error)
	err := db.Create(&models.Group{Name: "Coro Norte"}).Error

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestForeignKeysEnforced(t *testing.T) {
	db := openMemory(t)

	err := db.Create(&models.FlatSheetMusic{
		Title:    "Orphan",
		URL:      "https://flat.io/score/1",
		EmbedURL: "https://flat.io/embed/1",
		GroupID:  999,
	}).Error

	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"sheet_music.sqlite3", "sheet_music.sqlite3?_foreign_keys=on"},
		{"file:x?mode=memory&cache=shared", "file:x?mode=memory&cache=shared&_foreign_keys=on"},
		{"file:x?_foreign_keys=on", "file:x?_foreign_keys=on"},
		{"file:x?_fk=1", "file:x?_fk=1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
	}
}

func TestForeignKeysSurviveReconnect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.sqlite3")
	db, err := Initialize(path, &Options{Driver: DriverSQLite})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// Without idle connections every statement runs on a freshly opened one
	sqlDB.SetMaxIdleConns(0)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	err = db.Create(&models.FlatSheetMusic{
		Title:    "Orphan",
		URL:      "https://flat.io/score/1",
		EmbedURL: "https://flat.io/embed/1",
		GroupID:  999,
	}).Error
	assert.Error(t, err)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, GormLogLevel("debug"))
	assert.Equal(t, logger.Warn, GormLogLevel("WARN"))
	assert.Equal(t, logger.Error, GormLogLevel("info"))
	assert.Equal(t, logger.Error, GormLogLevel(""))
}

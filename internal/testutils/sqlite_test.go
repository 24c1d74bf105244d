package testutils

import (
	"testing"

	"sheet-music-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteDBIsIsolated(t *testing.T) {
	first := NewSQLiteDB(t)
	second := NewSQLiteDB(t)
	factories := NewFactorySet()

	require.NoError(t, first.Create(factories.Group.WithName("Coro Norte")).Error)

	var count int64
	require.NoError(t, second.Model(&models.Group{}).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, first.Model(&models.Group{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFactoriesProduceUniqueRecords(t *testing.T) {
	factories := NewFactorySet()

	a, b := factories.SheetMusic.Create(), factories.SheetMusic.Create()
	assert.NotEqual(t, a.Title, b.Title)
	assert.NotEqual(t, factories.User.Create().Email, factories.User.Create().Email)
}

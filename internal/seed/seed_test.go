package seed

import (
	"os"
	"path/filepath"
	"testing"

	"sheet-music-backend/internal/database/models"
	"sheet-music-backend/internal/service"
	"sheet-music-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir(t *testing.T) {
	data, err := LoadDir("testdata")
	require.NoError(t, err)

	assert.Len(t, data.Groups, 2)
	assert.Len(t, data.SheetMusic, 2)
	assert.Equal(t, "sur", data.Groups[1].Slug)
}

func TestLoadDirRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("groups: [name: {"), 0o600))

	_, err := LoadDir(dir)
	assert.Error(t, err)
}

func TestApplyIsIdempotent(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	data, err := LoadDir("testdata")
	require.NoError(t, err)

	first, err := Apply(db, data)
	require.NoError(t, err)
	assert.Equal(t, 2, first.GroupsCreated)
	assert.Equal(t, 2, first.SheetMusicCreated)

	second, err := Apply(db, data)
	require.NoError(t, err)
	assert.Zero(t, second.GroupsCreated)
	assert.Zero(t, second.SheetMusicCreated)
	assert.Equal(t, 2, second.SheetMusicTotal)

	var music []models.FlatSheetMusic
	require.NoError(t, db.Order("title").Find(&music).Error)
	require.Len(t, music, 2)
	assert.Equal(t, "Adeste Fideles", music[0].Title)
	assert.Equal(t, models.DefaultAuthor, music[0].Author)
	assert.Equal(t, "adeste-fideles", *music[0].Slug)

	var sur models.Group
	require.NoError(t, db.Where("name = ?", "Coro Sur").First(&sur).Error)
	assert.Equal(t, "sur", *sur.Slug)
	assert.Equal(t, sur.ID, music[0].GroupID)
}

func TestApplyUnknownGroupRollsBack(t *testing.T) {
	db := testutils.NewSQLiteDB(t)

	_, err := Apply(db, &File{
		Groups:     []GroupData{{Name: "Coro Norte"}},
		SheetMusic: []SheetMusicData{{Title: "Lost", URL: "https://x/a", EmbedURL: "https://x/e", GroupName: "Nobody"}},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Group{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplyRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		data  *File
		field string
	}{
		{
			name:  "malformed group slug",
			data:  &File{Groups: []GroupData{{Name: "Coro Norte", Slug: "Not A Slug!"}}},
			field: "slug",
		},
		{
			name: "sheet music url is not a url",
			data: &File{
				Groups:     []GroupData{{Name: "Coro Norte"}},
				SheetMusic: []SheetMusicData{{Title: "Ave Maria", URL: "not a url", EmbedURL: "https://flat.io/embed/a", GroupName: "Coro Norte"}},
			},
			field: "url",
		},
		{
			name: "sheet music without embed url",
			data: &File{
				Groups:     []GroupData{{Name: "Coro Norte"}},
				SheetMusic: []SheetMusicData{{Title: "Ave Maria", URL: "https://flat.io/score/a", GroupName: "Coro Norte"}},
			},
			field: "embed_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutils.NewSQLiteDB(t)

			_, err := Apply(db, tt.data)
			require.Error(t, err)
			assert.True(t, service.IsValidationFailure(err))
			assert.Contains(t, service.FieldErrors(err), tt.field)

			var groups, music int64
			require.NoError(t, db.Model(&models.Group{}).Count(&groups).Error)
			require.NoError(t, db.Model(&models.FlatSheetMusic{}).Count(&music).Error)
			assert.Zero(t, groups)
			assert.Zero(t, music)
		})
	}
}

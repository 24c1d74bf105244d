// Package seed loads groups and sheet music from YAML files into the store.
// Loading is idempotent: groups are matched by name and sheet music by title.
package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sheet-music-backend/internal/logger"
	"sheet-music-backend/internal/repository"
	"sheet-music-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// GroupData is one group entry of a groups file
type GroupData struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug,omitempty"`
}

// SheetMusicData is one entry of a sheet music file
type SheetMusicData struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle,omitempty"`
	URL       string `yaml:"url"`
	EmbedURL  string `yaml:"embed_url"`
	Author    string `yaml:"author,omitempty"`
	Arranger  string `yaml:"arranger,omitempty"`
	Slug      string `yaml:"slug,omitempty"`
	GroupName string `yaml:"group_name"`
}

// File is the layout of every seed file. A file may carry groups, sheet music or both.
type File struct {
	Groups     []GroupData      `yaml:"groups"`
	SheetMusic []SheetMusicData `yaml:"sheet_music"`
}

// Result counts what a load created
type Result struct {
	GroupsCreated     int
	GroupsTotal       int
	SheetMusicCreated int
	SheetMusicTotal   int
}

// LoadDir reads every .yaml and .yml file under dataDir, in lexical order
func LoadDir(dataDir string) (*File, error) {
	all := &File{}
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all.Groups = append(all.Groups, file.Groups...)
		all.SheetMusic = append(all.SheetMusic, file.SheetMusic...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// Apply creates the missing groups and sheet music in one transaction.
// Every new entry goes through the same validation as the API, and any failure
// rolls the whole load back.
func Apply(db *gorm.DB, data *File) (*Result, error) {
	result := &Result{GroupsTotal: len(data.Groups), SheetMusicTotal: len(data.SheetMusic)}

	err := db.Transaction(func(tx *gorm.DB) error {
		l := newLoader(tx)

		for _, g := range data.Groups {
			created, err := l.group(g)
			if err != nil {
				return fmt.Errorf("failed to create group %s: %w", g.Name, err)
			}
			if created {
				result.GroupsCreated++
			}
		}

		for _, m := range data.SheetMusic {
			created, err := l.sheetMusic(m)
			if err != nil {
				return fmt.Errorf("failed to create sheet music %s: %w", m.Title, err)
			}
			if created {
				result.SheetMusicCreated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{
		"groups_created":      result.GroupsCreated,
		"groups_total":        result.GroupsTotal,
		"sheet_music_created": result.SheetMusicCreated,
		"sheet_music_total":   result.SheetMusicTotal,
	}).Info("seed data applied")
	return result, nil
}

// loader writes seed entries through the domain services bound to one transaction
type loader struct {
	repos  *repository.Repositories
	groups *service.GroupService
	music  *service.SheetMusicService
}

func newLoader(tx *gorm.DB) *loader {
	repos := repository.NewRepositories(tx)
	txManager := repository.NewTransactionManager(tx)
	validator := service.NewValidator()
	return &loader{
		repos:  repos,
		groups: service.NewGroupService(repos.Groups, txManager, validator),
		music:  service.NewSheetMusicService(repos.SheetMusic, repos.Groups, txManager, validator),
	}
}

func (l *loader) group(data GroupData) (bool, error) {
	_, err := l.repos.Groups.GetByName(strings.TrimSpace(data.Name))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query group: %w", err)
	}

	if _, err := l.groups.Create(&service.CreateGroupRequest{Name: data.Name, Slug: optional(data.Slug)}); err != nil {
		return false, err
	}
	return true, nil
}

func (l *loader) sheetMusic(data SheetMusicData) (bool, error) {
	_, err := l.repos.SheetMusic.GetByTitle(strings.TrimSpace(data.Title))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query sheet music: %w", err)
	}

	group, err := l.repos.Groups.GetByName(strings.TrimSpace(data.GroupName))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("group %q not found", data.GroupName)
		}
		return false, err
	}

	_, err = l.music.Create(&service.CreateSheetMusicRequest{
		Title:    data.Title,
		Subtitle: optional(data.Subtitle),
		URL:      data.URL,
		EmbedURL: data.EmbedURL,
		Author:   data.Author,
		Arranger: optional(data.Arranger),
		Slug:     optional(data.Slug),
		GroupID:  group.ID,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

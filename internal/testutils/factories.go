package testutils

import (
	"fmt"
	"sync/atomic"

	"sheet-music-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
)

var sequence uint64

func next() uint64 {
	return atomic.AddUint64(&sequence, 1)
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with a unique name; the slug is left for the hooks to derive
func (f *GroupFactory) Create() *models.Group {
	return &models.Group{
		Name: fmt.Sprintf("Test Group %d", next()),
	}
}

// WithName sets a custom name for the group
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.Name = name
	return group
}

// WithSlug sets an explicit slug override
func (f *GroupFactory) WithSlug(name, slug string) *models.Group {
	group := f.WithName(name)
	group.Slug = &slug
	return group
}

// SheetMusicFactory provides methods to create test FlatSheetMusic data
type SheetMusicFactory struct{}

// NewSheetMusicFactory creates a new SheetMusicFactory
func NewSheetMusicFactory() *SheetMusicFactory {
	return &SheetMusicFactory{}
}

// Create creates a test sheet music entry with a unique title
func (f *SheetMusicFactory) Create() *models.FlatSheetMusic {
	n := next()
	return &models.FlatSheetMusic{
		Title:    fmt.Sprintf("Test Piece %d", n),
		URL:      fmt.Sprintf("https://flat.io/score/%d", n),
		EmbedURL: fmt.Sprintf("https://flat.io/embed/%d", n),
	}
}

// WithGroup creates sheet music owned by the given group
func (f *SheetMusicFactory) WithGroup(groupID uint) *models.FlatSheetMusic {
	music := f.Create()
	music.GroupID = groupID
	return music
}

// WithTitle creates sheet music with a custom title owned by the given group
func (f *SheetMusicFactory) WithTitle(groupID uint, title string) *models.FlatSheetMusic {
	music := f.WithGroup(groupID)
	music.Title = title
	return music
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test user without a usable password
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Email:    fmt.Sprintf("user%d@example.com", next()),
		Password: "!",
		Name:     "Test User",
		IsActive: true,
	}
}

// WithPassword creates an active test user whose password hashes the given plaintext
func (f *UserFactory) WithPassword(email, password string) *models.User {
	user := f.Create()
	user.Email = email
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	user.Password = string(hash)
	return user
}

// FactorySet provides access to all factories
type FactorySet struct {
	Group      *GroupFactory
	SheetMusic *SheetMusicFactory
	User       *UserFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Group:      NewGroupFactory(),
		SheetMusic: NewSheetMusicFactory(),
		User:       NewUserFactory(),
	}
}

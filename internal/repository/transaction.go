package repository

import (
	"gorm.io/gorm"
)

// Repositories groups the repositories that take part in a unit of work
type Repositories struct {
	Groups     GroupRepositoryInterface
	SheetMusic SheetMusicRepositoryInterface
	Users      UserRepositoryInterface
	Sessions   SessionRepositoryInterface
}

// NewRepositories binds every repository to the given connection or transaction
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Groups:     NewGroupRepository(db),
		SheetMusic: NewSheetMusicRepository(db),
		Users:      NewUserRepository(db),
		Sessions:   NewSessionRepository(db),
	}
}

// TransactionManager opens gorm transactions
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithinTransaction runs fn with repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (m *TransactionManager) WithinTransaction(fn func(repos *Repositories) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

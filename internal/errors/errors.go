package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError is a uniqueness violation: a write collided with an existing
// record on a unique field.
type AlreadyExistsError struct {
	Entity  string
	Field   string
	Context string // e.g. "with this slug"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Field == t.Field
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrGroupNotFound      = &NotFoundError{Entity: "group"}
	ErrSheetMusicNotFound = &NotFoundError{Entity: "sheet music"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
)

// Uniqueness Errors
var (
	ErrGroupNameExists       = &AlreadyExistsError{Entity: "group", Field: "name", Context: "with this name"}
	ErrGroupSlugExists       = &AlreadyExistsError{Entity: "group", Field: "slug", Context: "with this slug"}
	ErrSheetMusicTitleExists = &AlreadyExistsError{Entity: "sheet music", Field: "title", Context: "with this title"}
	ErrSheetMusicSlugExists  = &AlreadyExistsError{Entity: "sheet music", Field: "slug", Context: "with this slug"}
	ErrUserExists            = &AlreadyExistsError{Entity: "user", Field: "email", Context: "with this email"}
)

// Authentication Errors
var (
	ErrUnauthorized = &AuthenticationError{Message: "authentication required"}
	// ErrInvalidCredentials is returned for every failed login so callers cannot tell
	// an unknown email from a wrong password.
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrSessionExpired     = &AuthenticationError{Message: "session has expired"}
	ErrInvalidSession     = &AuthenticationError{Message: "invalid session"}
)

// Account Errors
var (
	ErrEmailRequired       = &ValidationError{Field: "email", Message: "The given email must be set"}
	ErrSuperuserNotStaff   = &ValidationError{Field: "is_staff", Message: "Superuser must have is_staff=True."}
	ErrSuperuserNotFlagged = &ValidationError{Field: "is_superuser", Message: "Superuser must have is_superuser=True."}
	ErrStaffRequired       = &AuthorizationError{Message: "staff privileges required"}
)

// Configuration Errors
var (
	ErrUnsupportedDatabaseDriver = errors.New("unsupported database driver")
	ErrJWTSecretMissing          = &ConfigurationError{Message: "JWT secret is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, field, context string) error {
	return &AlreadyExistsError{Entity: entity, Field: field, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	apperrors "sheet-music-backend/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for new hashes
var PasswordCost = bcrypt.DefaultCost

// unusablePrefix marks a stored password that can never verify
const unusablePrefix = "!"

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// HashPassword returns the bcrypt hash of plain. An empty password yields an unusable marker.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return MakeUnusablePassword(), nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.NewValidationError("password", "Ensure this value has at most 72 bytes.")
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// MakeUnusablePassword returns a random value that CheckPassword always rejects
func MakeUnusablePassword() string {
	buf := make([]byte, 30)
	if _, err := rand.Read(buf); err != nil {
		return unusablePrefix
	}
	return unusablePrefix + base64.RawURLEncoding.EncodeToString(buf)
}

// IsUsablePassword reports whether hash can ever verify a password
func IsUsablePassword(hash string) bool {
	return hash != "" && !strings.HasPrefix(hash, unusablePrefix)
}

// CheckPassword compares plain against hash in constant time.
// Unusable hashes still cost one bcrypt comparison so the outcome is not observable by timing.
func CheckPassword(hash, plain string) bool {
	if !IsUsablePassword(hash) {
		burnComparison(plain)
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// burnComparison runs one comparison against a fixed hash
func burnComparison(plain string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("sheet-music-dummy-password"), PasswordCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
}

// NormalizeEmail trims the address and lowercases its domain part
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"sheet-music-backend/internal/database/models"
	apperrors "sheet-music-backend/internal/errors"
	"sheet-music-backend/internal/logger"
	"sheet-music-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService authenticates users by email and password and manages their sessions
type AuthService struct {
	config   *AuthConfig
	users    repository.UserRepositoryInterface
	sessions repository.SessionRepositoryInterface
	now      func() time.Time
}

// AuthClaims represents JWT token claims. The registered ID (jti) is the session id
// and the subject is the user's email.
type AuthClaims struct {
	Email   string `json:"email" example:"ana@example.com"`
	IsStaff bool   `json:"is_staff" example:"false"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginMeta describes the client that is logging in
type LoginMeta struct {
	UserAgent string
	ClientIP  string
}

// LoginResult is the opaque session handle plus the authenticated user
type LoginResult struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type" example:"Bearer"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface, sessions repository.SessionRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:   config,
		users:    users,
		sessions: sessions,
		now:      time.Now,
	}, nil
}

// Login verifies the credentials and opens a session.
// Every failure mode returns ErrInvalidCredentials so the caller cannot probe for accounts.
func (s *AuthService) Login(email, password string, meta LoginMeta) (*LoginResult, error) {
	email = NormalizeEmail(email)
	log := logger.New().WithField("email", email)

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			burnComparison(password)
			log.Info("login failed")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !CheckPassword(user.Password, password) || !user.IsActive {
		log.Info("login failed")
		return nil, apperrors.ErrInvalidCredentials
	}

	now := s.now().UTC()
	if pruned, err := s.sessions.DeleteExpired(now); err != nil {
		log.WithError(err).Warn("failed to prune expired sessions")
	} else if pruned > 0 {
		log.Debugf("pruned %d expired sessions", pruned)
	}

	session := &models.Session{
		ID:        uuid.New(),
		UserEmail: user.Email,
		ExpiresAt: now.Add(s.config.SessionTTL),
		UserAgent: truncate(meta.UserAgent, 255),
		ClientIP:  truncate(meta.ClientIP, 64),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.GenerateJWT(session.ID, user, now, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	if err := s.users.UpdateLastLogin(user.Email, now); err != nil {
		log.WithError(err).Warn("failed to record last login")
	} else {
		user.LastLogin = &now
	}

	log.Info("login succeeded")
	return &LoginResult{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}

// Logout ends the session behind token. Unknown or already ended sessions are not an error.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil
	}

	if err := s.sessions.Delete(id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	logger.New().WithField("email", claims.Email).Info("logged out")
	return nil
}

// ValidateSession checks the token signature and expiry, then requires the live session
// row and an active user behind it.
func (s *AuthService) ValidateSession(token string) (*AuthClaims, error) {
	claims, err := s.ValidateJWT(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrInvalidSession
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	session, err := s.sessions.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserEmail != claims.Subject {
		return nil, apperrors.ErrInvalidSession
	}
	if session.Expired(s.now()) {
		return nil, apperrors.ErrSessionExpired
	}

	user, err := s.users.GetByEmail(session.UserEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidSession
	}

	claims.Email = user.Email
	claims.IsStaff = user.IsStaff || user.IsSuperuser
	return claims, nil
}

// CurrentUser loads the account behind an authenticated email
func (s *AuthService) CurrentUser(email string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// AuthorizeStaff fails with ErrStaffRequired unless the account is active staff
func (s *AuthService) AuthorizeStaff(email string) error {
	user, err := s.CurrentUser(email)
	if err != nil {
		return err
	}
	if !user.CanAccessAdmin() {
		return apperrors.ErrStaffRequired
	}
	return nil
}

// SetUserActive enables or disables an account. Disabling ends every open session of the user.
func (s *AuthService) SetUserActive(email string, active bool) (*models.User, error) {
	user, err := s.CurrentUser(NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	user.IsActive = active
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !active {
		if err := s.sessions.DeleteByUserEmail(user.Email); err != nil {
			return nil, fmt.Errorf("failed to end sessions: %w", err)
		}
	}

	logger.New().WithFields(map[string]interface{}{"email": user.Email, "is_active": active}).Info("user activation changed")
	return user, nil
}

// GenerateJWT signs a session handle for the given session and user
func (s *AuthService) GenerateJWT(sessionID uuid.UUID, user *models.User, issuedAt, expiresAt time.Time) (string, error) {
	claims := &AuthClaims{
		Email:   user.Email,
		IsStaff: user.IsStaff || user.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID.String(),
			Subject:   user.Email,
			Issuer:    s.config.Issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT verifies the signature, issuer and time claims of a token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	return s.parse(tokenString,
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
}

func (s *AuthService) parse(tokenString string, opts ...jwt.ParserOption) (*AuthClaims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, opts...)

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

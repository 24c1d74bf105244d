package auth

import (
	"net/http"
	"strings"

	apperrors "sheet-music-backend/internal/errors"
	"sheet-music-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service Authenticator
	config  *AuthConfig
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service Authenticator, config *AuthConfig) *AuthHandler {
	return &AuthHandler{service: service, config: config}
}

// LoginRequest carries the credentials from a JSON body or an HTML form post
type LoginRequest struct {
	Email    string `json:"email" form:"email" example:"ana@example.com"`
	Password string `json:"password" form:"password" example:"s3cret"`
	Next     string `json:"next" form:"next"`
}

// LoginResponse is returned after a successful JSON login
type LoginResponse struct {
	Message  string `json:"message" example:"Logged in successfully"`
	Redirect string `json:"redirect" example:"/api/v1/sheet-music"`
	*LoginResult
}

// LoginPage handles GET /api/v1/auth/login
// @Summary Login entry point
// @Description Reports whether the caller is already authenticated. Authenticated browsers are redirected to the sheet music list.
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "Authentication state"
// @Success 302 {string} string "Redirect to the sheet music list"
// @Router /auth/login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if email, ok := GetUserEmail(c); ok {
		if WantsHTML(c) {
			c.Redirect(http.StatusFound, h.config.HomePath)
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "email": email, "redirect": h.config.HomePath})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": false, "fields": []string{"email", "password"}})
}

// Login handles POST /api/v1/auth/login
// @Summary Log in with email and password
// @Description Verifies the credentials, opens a session, sets the session cookie and returns the session token
// @Tags authentication
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]interface{} "Malformed request"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Login(req.Email, req.Password, LoginMeta{
		UserAgent: c.Request.UserAgent(),
		ClientIP:  c.ClientIP(),
	})
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	h.setSessionCookie(c, result.Token, int(h.config.SessionTTL.Seconds()))

	redirect := safeRedirect(req.Next, h.config.HomePath)
	if WantsHTML(c) {
		c.Redirect(http.StatusFound, redirect)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message:     "Logged in successfully",
		Redirect:    redirect,
		LoginResult: result,
	})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Ends the current session and clears the session cookie
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := TokenFromRequest(c, h.config.CookieName)
	if err := h.service.Logout(token); err != nil {
		logger.WithContext(c).WithError(err).Error("logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed", "details": err.Error()})
		return
	}

	h.setSessionCookie(c, "", -1)

	if WantsHTML(c) {
		c.Redirect(http.StatusFound, h.config.LoginPath)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully", "redirect": h.config.LoginPath})
}

// Me handles GET /api/v1/auth/me
// @Summary Current user
// @Description Returns the account behind the current session
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Current user"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Error(), "redirect": h.config.LoginPath})
		return
	}

	user, err := h.service.CurrentUser(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthorized.Error(), "redirect": h.config.LoginPath})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to load current user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SetUserActiveRequest toggles an account
type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" form:"is_active" binding:"required" example:"false"`
}

// SetUserActive handles PUT /api/v1/auth/users/{email}/active
// @Summary Activate or deactivate a user
// @Description Staff only. Deactivating an account ends all of its sessions.
// @Tags authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param body body SetUserActiveRequest true "New state"
// @Success 200 {object} map[string]interface{} "Updated user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 403 {object} map[string]interface{} "Staff privileges required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /auth/users/{email}/active [put]
func (h *AuthHandler) SetUserActive(c *gin.Context) {
	var req SetUserActiveRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.service.SetUserActive(c.Param("email"), *req.IsActive)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to change user activation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	message := "User activated successfully"
	if !user.IsActive {
		message = "User deactivated successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "user": user})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, value, maxAge, "/", "", h.config.CookieSecure, true)
}

// safeRedirect accepts only local absolute paths
func safeRedirect(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}

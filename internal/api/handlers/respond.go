package handlers

import (
	"net/http"
	"net/url"

	"sheet-music-backend/internal/auth"
	apperrors "sheet-music-backend/internal/errors"
	"sheet-music-backend/internal/logger"
	"sheet-music-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	GroupListPath      = "/api/v1/groups"
	SheetMusicListPath = "/api/v1/sheet-music"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// ValidationErrorResponse lists the rejected fields of a create or update request
type ValidationErrorResponse struct {
	Error  string            `json:"error" example:"validation failed"`
	Fields map[string]string `json:"fields"`
}

// MutationResponse is returned after a successful create, update or delete
type MutationResponse struct {
	Message  string `json:"message" example:"Group created successfully"`
	Redirect string `json:"redirect" example:"/api/v1/groups"`
}

// respondError maps a service error onto the HTTP error contract. Nothing has been written when it is called.
func respondError(c *gin.Context, err error, action string) {
	switch {
	case service.IsValidationFailure(err):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: service.FieldErrors(err)})
	case apperrors.IsAlreadyExists(err):
		resp := gin.H{"error": err.Error()}
		if fields := service.FieldErrors(err); fields != nil {
			resp["fields"] = fields
		}
		c.JSON(http.StatusConflict, resp)
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithError(err).Errorf("failed to %s", action)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// respondMutation answers a successful create, update or delete. Browsers are sent
// back to the list view with the notification in the message query parameter.
func respondMutation(c *gin.Context, status int, result MutationResponse, body interface{}) {
	if auth.WantsHTML(c) {
		c.Redirect(http.StatusFound, result.Redirect+"?"+url.Values{"message": {result.Message}}.Encode())
		return
	}
	c.JSON(status, body)
}

// bindBody accepts JSON bodies and HTML form posts alike
func bindBody(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return false
	}
	return true
}

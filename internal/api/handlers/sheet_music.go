package handlers

import (
	"net/http"

	"sheet-music-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SheetMusicHandler handles HTTP requests for sheet music
type SheetMusicHandler struct {
	service service.SheetMusicServiceInterface
}

// NewSheetMusicHandler creates a new sheet music handler
func NewSheetMusicHandler(service service.SheetMusicServiceInterface) *SheetMusicHandler {
	return &SheetMusicHandler{service: service}
}

// SheetMusicMutationResponse is returned after sheet music is created, updated or deleted
type SheetMusicMutationResponse struct {
	MutationResponse
	SheetMusic *service.SheetMusicResponse `json:"sheet_music"`
}

// ListSheetMusic handles GET /sheet-music
// @Summary List sheet music
// @Description Get all sheet music ordered by title ascending
// @Tags sheet-music
// @Produce json
// @Param group query string false "Group id or slug"
// @Param q query string false "Case-insensitive search in title, subtitle, author and arranger"
// @Param ordering query string false "title, author, created_at or updated_at, prefixed with - for descending"
// @Success 200 {array} service.SheetMusicResponse "Successfully retrieved sheet music"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sheet-music [get]
func (h *SheetMusicHandler) ListSheetMusic(c *gin.Context) {
	var params service.SheetMusicListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Details: err.Error()})
		return
	}

	music, err := h.service.List(&params)
	if err != nil {
		respondError(c, err, "list sheet music")
		return
	}

	c.JSON(http.StatusOK, music)
}

// CreateSheetMusic handles POST /sheet-music
// @Summary Create sheet music
// @Description Create a sheet music entry in an existing group
// @Tags sheet-music
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param sheet_music body service.CreateSheetMusicRequest true "Sheet music data"
// @Success 201 {object} SheetMusicMutationResponse "Successfully created sheet music"
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 409 {object} map[string]interface{} "Title or slug already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sheet-music [post]
func (h *SheetMusicHandler) CreateSheetMusic(c *gin.Context) {
	var req service.CreateSheetMusicRequest
	if !bindBody(c, &req) {
		return
	}

	music, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "create sheet music")
		return
	}

	resp := SheetMusicMutationResponse{
		MutationResponse: MutationResponse{Message: "Sheet music created successfully", Redirect: SheetMusicListPath},
		SheetMusic:       music,
	}
	respondMutation(c, http.StatusCreated, resp.MutationResponse, resp)
}

// GetSheetMusic handles GET /sheet-music/{key}
// @Summary Get sheet music
// @Description Get a sheet music entry by UUID or slug
// @Tags sheet-music
// @Produce json
// @Param key path string true "Sheet music UUID or slug"
// @Success 200 {object} service.SheetMusicResponse "Successfully retrieved sheet music"
// @Failure 404 {object} ErrorResponse "Sheet music not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sheet-music/{key} [get]
func (h *SheetMusicHandler) GetSheetMusic(c *gin.Context) {
	music, err := h.service.Get(c.Param("key"))
	if err != nil {
		respondError(c, err, "get sheet music")
		return
	}

	c.JSON(http.StatusOK, music)
}

// UpdateSheetMusic handles PUT /sheet-music/{key}
// @Summary Update sheet music
// @Description Replace the editable fields of a sheet music entry. The slug is kept unless a new one is given.
// @Tags sheet-music
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param key path string true "Sheet music UUID or slug"
// @Param sheet_music body service.UpdateSheetMusicRequest true "Sheet music data"
// @Success 200 {object} SheetMusicMutationResponse "Successfully updated sheet music"
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} ErrorResponse "Sheet music not found"
// @Failure 409 {object} map[string]interface{} "Title or slug already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sheet-music/{key} [put]
func (h *SheetMusicHandler) UpdateSheetMusic(c *gin.Context) {
	var req service.UpdateSheetMusicRequest
	if !bindBody(c, &req) {
		return
	}

	music, err := h.service.Update(c.Param("key"), &req)
	if err != nil {
		respondError(c, err, "update sheet music")
		return
	}

	resp := SheetMusicMutationResponse{
		MutationResponse: MutationResponse{Message: "Sheet music updated successfully", Redirect: SheetMusicListPath},
		SheetMusic:       music,
	}
	respondMutation(c, http.StatusOK, resp.MutationResponse, resp)
}

// DeleteSheetMusic handles DELETE /sheet-music/{key}
// @Summary Delete sheet music
// @Description Delete a sheet music entry
// @Tags sheet-music
// @Produce json
// @Param key path string true "Sheet music UUID or slug"
// @Success 200 {object} SheetMusicMutationResponse "Successfully deleted sheet music"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} ErrorResponse "Sheet music not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sheet-music/{key} [delete]
func (h *SheetMusicHandler) DeleteSheetMusic(c *gin.Context) {
	music, err := h.service.Delete(c.Param("key"))
	if err != nil {
		respondError(c, err, "delete sheet music")
		return
	}

	resp := SheetMusicMutationResponse{
		MutationResponse: MutationResponse{Message: "Sheet music deleted successfully", Redirect: SheetMusicListPath},
		SheetMusic:       music,
	}
	respondMutation(c, http.StatusOK, resp.MutationResponse, resp)
}

package handlers

import (
	"net/http"

	"sheet-music-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// GroupMutationResponse is returned after a group is created, updated or deleted
type GroupMutationResponse struct {
	MutationResponse
	Group *service.GroupResponse `json:"group"`
}

// ListGroups handles GET /groups
// @Summary List groups
// @Description Get all groups ordered by name
// @Tags groups
// @Produce json
// @Success 200 {array} service.GroupResponse "Successfully retrieved groups"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.service.List()
	if err != nil {
		respondError(c, err, "list groups")
		return
	}

	c.JSON(http.StatusOK, groups)
}

// CreateGroup handles POST /groups
// @Summary Create a new group
// @Description Create a group. The slug is derived from the name unless given.
// @Tags groups
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} GroupMutationResponse "Successfully created group"
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 409 {object} map[string]interface{} "Name or slug already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if !bindBody(c, &req) {
		return
	}

	group, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err, "create group")
		return
	}

	resp := GroupMutationResponse{
		MutationResponse: MutationResponse{Message: "Group created successfully", Redirect: GroupListPath},
		Group:            group,
	}
	respondMutation(c, http.StatusCreated, resp.MutationResponse, resp)
}

// GetGroup handles GET /groups/{key}
// @Summary Get group
// @Description Get a group by numeric id or slug
// @Tags groups
// @Produce json
// @Param key path string true "Group id or slug"
// @Success 200 {object} service.GroupResponse "Successfully retrieved group"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups/{key} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	group, err := h.service.Get(c.Param("key"))
	if err != nil {
		respondError(c, err, "get group")
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateGroup handles PUT /groups/{key}
// @Summary Update group
// @Description Rename a group. The slug is kept unless a new one is given.
// @Tags groups
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param key path string true "Group id or slug"
// @Param group body service.UpdateGroupRequest true "Group data"
// @Success 200 {object} GroupMutationResponse "Successfully updated group"
// @Failure 400 {object} ValidationErrorResponse "Invalid request"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} map[string]interface{} "Name or slug already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{key} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	var req service.UpdateGroupRequest
	if !bindBody(c, &req) {
		return
	}

	group, err := h.service.Update(c.Param("key"), &req)
	if err != nil {
		respondError(c, err, "update group")
		return
	}

	resp := GroupMutationResponse{
		MutationResponse: MutationResponse{Message: "Group updated successfully", Redirect: GroupListPath},
		Group:            group,
	}
	respondMutation(c, http.StatusOK, resp.MutationResponse, resp)
}

// DeleteGroup handles DELETE /groups/{key}
// @Summary Delete group
// @Description Delete a group together with all of its sheet music
// @Tags groups
// @Produce json
// @Param key path string true "Group id or slug"
// @Success 200 {object} GroupMutationResponse "Successfully deleted group"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /groups/{key} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	group, err := h.service.Delete(c.Param("key"))
	if err != nil {
		respondError(c, err, "delete group")
		return
	}

	resp := GroupMutationResponse{
		MutationResponse: MutationResponse{Message: "Group deleted successfully", Redirect: GroupListPath},
		Group:            group,
	}
	respondMutation(c, http.StatusOK, resp.MutationResponse, resp)
}

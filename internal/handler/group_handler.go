package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svj-dojo/bellwall-api/internal/service"
	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
	"github.com/svj-dojo/bellwall-api/pkg/response"
)

// GroupHandler manages schedule group endpoints.
type GroupHandler struct {
	service *service.GroupService
}

// NewGroupHandler constructs handler.
func NewGroupHandler(svc *service.GroupService) *GroupHandler {
	return &GroupHandler{service: svc}
}

// List godoc
// @Summary List schedule groups
// @Tags Groups
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /groups [get]
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups, nil)
}

// Create godoc
// @Summary Create schedule group
// @Tags Groups
// @Accept json
// @Produce json
// @Param payload body service.CreateGroupRequest true "Group payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /groups [post]
func (h *GroupHandler) Create(c *gin.Context) {
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid group payload"))
		return
	}

	group, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, group)
}

// Activate godoc
// @Summary Activate schedule group
// @Description Make this group the one the wall display runs; deactivates all others
// @Tags Groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /groups/{id}/activate [post]
func (h *GroupHandler) Activate(c *gin.Context) {
	if err := h.service.Activate(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete godoc
// @Summary Delete schedule group
// @Tags Groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /groups/{id} [delete]
func (h *GroupHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

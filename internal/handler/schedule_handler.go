package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svj-dojo/bellwall-api/internal/service"
	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
	"github.com/svj-dojo/bellwall-api/pkg/response"
)

// ScheduleHandler manages schedule endpoints.
type ScheduleHandler struct {
	service *service.ScheduleService
	export  *service.ExportService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc *service.ScheduleService, export *service.ExportService) *ScheduleHandler {
	return &ScheduleHandler{service: svc, export: export}
}

// ListByGroup godoc
// @Summary List schedules in a group
// @Tags Schedules
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Router /groups/{id}/schedules [get]
func (h *ScheduleHandler) ListByGroup(c *gin.Context) {
	schedules, err := h.service.ListByGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedules, nil)
}

// Get godoc
// @Summary Get schedule detail
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}

// Create godoc
// @Summary Create schedule
// @Description Section boundaries are derived from class start and durations
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body service.CreateScheduleRequest true "Schedule payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}

	schedule, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, schedule)
}

// Update godoc
// @Summary Update schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param payload body service.UpdateScheduleRequest true "Schedule payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedules/{id} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req service.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}

	schedule, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}

// Duplicate godoc
// @Summary Duplicate schedule
// @Description Copy a schedule within its group; the copy has no day assigned
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedules/{id}/duplicate [post]
func (h *ScheduleHandler) Duplicate(c *gin.Context) {
	schedule, err := h.service.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, schedule)
}

// Delete godoc
// @Summary Delete schedule
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export schedule
// @Description Render a schedule as a printable CSV or PDF table
// @Tags Schedules
// @Produce octet-stream
// @Param id path string true "Schedule ID"
// @Param format query string false "Export format (csv or pdf)" default(pdf)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedules/{id}/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "pdf")
	result, err := h.export.Render(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+result.Filename)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

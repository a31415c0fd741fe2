package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svj-dojo/bellwall-api/internal/audio"
	"github.com/svj-dojo/bellwall-api/internal/service"
	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
	"github.com/svj-dojo/bellwall-api/pkg/response"
)

// DisplayHandler exposes the live engine state to the wall display.
type DisplayHandler struct {
	service *service.DisplayService
}

// NewDisplayHandler constructs handler.
func NewDisplayHandler(svc *service.DisplayService) *DisplayHandler {
	return &DisplayHandler{service: svc}
}

// State godoc
// @Summary Current display state
// @Description Timer state, selected schedule and occurrence for the wall display
// @Tags Display
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /display/state [get]
func (h *DisplayHandler) State(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.State(), nil)
}

// Next godoc
// @Summary Next class occurrence
// @Description The schedule the display counts down to, with its occurrence label
// @Tags Display
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /display/next [get]
func (h *DisplayHandler) Next(c *gin.Context) {
	schedule, occurrence := h.service.Next()
	response.JSON(c, http.StatusOK, gin.H{
		"schedule":   schedule,
		"occurrence": occurrence,
	}, nil)
}

// Mute godoc
// @Summary Toggle display audio
// @Tags Display
// @Accept json
// @Produce json
// @Param payload body service.MuteRequest true "Mute payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /display/mute [put]
func (h *DisplayHandler) Mute(c *gin.Context) {
	var req service.MuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mute payload"))
		return
	}

	muted := h.service.SetMuted(req)
	response.JSON(c, http.StatusOK, gin.H{"muted": muted}, nil)
}

// Sounds godoc
// @Summary List bell sounds
// @Description The closed catalogue of bell sounds with their tone parameters
// @Tags Display
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /sounds [get]
func (h *DisplayHandler) Sounds(c *gin.Context) {
	sounds := audio.Sounds()
	items := make([]gin.H, 0, len(sounds))
	for _, s := range sounds {
		items = append(items, gin.H{"name": s, "tone": s.Tone()})
	}
	response.JSON(c, http.StatusOK, items, nil)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/services"
)

// StatsHandler handles page-view counter HTTP requests.
type StatsHandler struct {
	service services.StatsService
}

// NewStatsHandler creates a new StatsHandler instance.
func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// TrackRequest is the fire-and-forget counter payload.
type TrackRequest struct {
	PageName string `json:"pageName" binding:"required,max=200"`
}

// Track handles POST /stats/track.
func (h *StatsHandler) Track(c *gin.Context) {
	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	stat, err := h.service.Track(c.Request.Context(), req.PageName)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondOK(c, stat)
}

// List handles GET /admin/stats.
func (h *StatsHandler) List(c *gin.Context) {
	stats, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondOK(c, stats)
}

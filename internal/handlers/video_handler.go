package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/repository"
	"github.com/crestview/estates-api/internal/services"
)

const videoPageSize = 25

// VideoHandler handles gallery video HTTP requests.
type VideoHandler struct {
	service services.VideoService
}

// NewVideoHandler creates a new VideoHandler instance.
func NewVideoHandler(service services.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

// VideoRequest is the create/update payload for a gallery video.
type VideoRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	VideoLink string `json:"videoLink" binding:"required,videourl"`
	Order     int    `json:"order" binding:"gte=0"`
}

// List handles GET /videos.
func (h *VideoHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), videoPageSize)
	filter := repository.VideoFilter{Search: c.Query("search")}

	videos, page, err := h.service.List(c.Request.Context(), filter, params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondList(c, videos, page)
}

// Create handles POST /admin/videos.
func (h *VideoHandler) Create(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	video := &models.Video{Title: req.Title, VideoLink: req.VideoLink, Order: req.Order}
	if err := h.service.Create(c.Request.Context(), video); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, video, "Video created")
}

// Update handles PUT /admin/videos/:id.
func (h *VideoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid video id")
		return
	}

	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	video := &models.Video{ID: id, Title: req.Title, VideoLink: req.VideoLink, Order: req.Order}
	if err := h.service.Update(c.Request.Context(), video); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, video, "Video updated")
}

// Delete handles DELETE /admin/videos/:id.
func (h *VideoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid video id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, nil, "Video deleted")
}

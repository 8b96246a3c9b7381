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

const builderPageSize = 25

// BuilderHandler handles property-developer HTTP requests.
type BuilderHandler struct {
	service services.BuilderService
}

// NewBuilderHandler creates a new BuilderHandler instance.
func NewBuilderHandler(service services.BuilderService) *BuilderHandler {
	return &BuilderHandler{service: service}
}

// BuilderRequest is the create/update payload for a builder.
type BuilderRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	LogoURL     *string `json:"logoUrl" binding:"omitempty,url"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// List handles GET /builders.
func (h *BuilderHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), builderPageSize)
	filter := repository.BuilderFilter{Search: c.Query("search")}

	builders, page, err := h.service.List(c.Request.Context(), filter, params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondList(c, builders, page)
}

// Create handles POST /admin/builders.
func (h *BuilderHandler) Create(c *gin.Context) {
	var req BuilderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	builder := &models.Builder{Name: req.Name, LogoURL: req.LogoURL, Description: req.Description}
	if err := h.service.Create(c.Request.Context(), builder); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, builder, "Builder created")
}

// Update handles PUT /admin/builders/:id.
func (h *BuilderHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid builder id")
		return
	}

	var req BuilderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	builder := &models.Builder{ID: id, Name: req.Name, LogoURL: req.LogoURL, Description: req.Description}
	if err := h.service.Update(c.Request.Context(), builder); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, builder, "Builder updated")
}

// Delete handles DELETE /admin/builders/:id.
func (h *BuilderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid builder id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, nil, "Builder deleted")
}

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

// Default page size for property listings.
const propertyPageSize = 12

// PropertyHandler handles property-related HTTP requests.
type PropertyHandler struct {
	service services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(service services.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// PropertyImageRequest is one gallery entry in a property payload.
type PropertyImageRequest struct {
	URL  string `json:"url" binding:"required,url"`
	Role string `json:"role" binding:"omitempty,max=50"`
}

// PropertyConfigurationRequest is one configuration in a property payload.
type PropertyConfigurationRequest struct {
	Name  string   `json:"name" binding:"required,max=100"`
	Area  *string  `json:"area" binding:"omitempty,max=50"`
	Price *float64 `json:"price" binding:"omitempty,gte=0"`
}

// PropertyRequest is the create/update payload for a property.
type PropertyRequest struct {
	Name           string                         `json:"name" binding:"required,max=200"`
	Slug           string                         `json:"slug" binding:"omitempty,slug"`
	Type           string                         `json:"type" binding:"required,oneof=residential plot commercial offices"`
	Status         string                         `json:"status" binding:"required,oneof=available sold reserved"`
	Builder        string                         `json:"builder" binding:"required,max=200"`
	Location       *string                        `json:"location" binding:"omitempty,max=500"`
	Description    *string                        `json:"description" binding:"omitempty,max=5000"`
	Price          *float64                       `json:"price" binding:"omitempty,gte=0"`
	Images         []PropertyImageRequest         `json:"images" binding:"omitempty,dive"`
	Configurations []PropertyConfigurationRequest `json:"configurations" binding:"omitempty,dive"`
}

func (req *PropertyRequest) toModel() *models.Property {
	p := &models.Property{
		Name:        req.Name,
		Slug:        req.Slug,
		Type:        models.PropertyType(req.Type),
		Status:      models.PropertyStatus(req.Status),
		Builder:     req.Builder,
		Location:    req.Location,
		Description: req.Description,
		Price:       req.Price,
	}
	for _, img := range req.Images {
		p.Images = append(p.Images, models.PropertyImage{URL: img.URL, Role: img.Role})
	}
	for _, cfg := range req.Configurations {
		p.Configurations = append(p.Configurations, models.PropertyConfiguration{
			Name:  cfg.Name,
			Area:  cfg.Area,
			Price: cfg.Price,
		})
	}
	return p
}

// List handles GET /properties. Supports page, limit, search, type,
// status and builder query parameters.
func (h *PropertyHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), propertyPageSize)
	filter := repository.PropertyFilter{
		Search:  c.Query("search"),
		Type:    c.Query("type"),
		Status:  c.Query("status"),
		Builder: c.Query("builder"),
	}

	properties, page, err := h.service.List(c.Request.Context(), filter, params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondList(c, properties, page)
}

// GetBySlug handles GET /properties/:slug.
func (h *PropertyHandler) GetBySlug(c *gin.Context) {
	property, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondOK(c, property)
}

// Create handles POST /admin/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	property := req.toModel()
	if err := h.service.Create(c.Request.Context(), property); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, property, "Property created")
}

// Update handles PUT /admin/properties/:id.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid property id")
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	property := req.toModel()
	property.ID = id
	if err := h.service.Update(c.Request.Context(), property); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, property, "Property updated")
}

// Delete handles DELETE /admin/properties/:id.
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid property id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, nil, "Property deleted")
}

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

const blogPageSize = 12

// BlogHandler handles blog-related HTTP requests.
type BlogHandler struct {
	service services.BlogService
}

// NewBlogHandler creates a new BlogHandler instance.
func NewBlogHandler(service services.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// BlogRequest is the create/update payload for a blog post.
// A VIDEO-type post must carry a recognized video URL; that rule is
// enforced by the service since it spans two fields.
type BlogRequest struct {
	Title     string  `json:"title" binding:"required,max=200"`
	Slug      string  `json:"slug" binding:"omitempty,slug"`
	Type      string  `json:"type" binding:"required,oneof=TEXT VIDEO"`
	Content   string  `json:"content" binding:"required,min=10"`
	CoverURL  *string `json:"coverUrl" binding:"omitempty,url"`
	VideoURL  *string `json:"videoUrl" binding:"omitempty,videourl"`
	Published bool    `json:"published"`
}

func (req *BlogRequest) toModel() *models.Blog {
	return &models.Blog{
		Title:     req.Title,
		Slug:      req.Slug,
		Type:      models.BlogType(req.Type),
		Content:   req.Content,
		CoverURL:  req.CoverURL,
		VideoURL:  req.VideoURL,
		Published: req.Published,
	}
}

// List handles GET /blogs. Supports page, limit, search, type and
// published query parameters.
func (h *BlogHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), blogPageSize)
	filter := repository.BlogFilter{
		Search:    c.Query("search"),
		Type:      c.Query("type"),
		Published: c.Query("published"),
	}

	blogs, page, err := h.service.List(c.Request.Context(), filter, params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondList(c, blogs, page)
}

// GetBySlug handles GET /blogs/:slug.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	blog, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondOK(c, blog)
}

// Create handles POST /admin/blogs.
func (h *BlogHandler) Create(c *gin.Context) {
	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	blog := req.toModel()
	if err := h.service.Create(c.Request.Context(), blog); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, blog, "Blog created")
}

// Update handles PUT /admin/blogs/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid blog id")
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	blog := req.toModel()
	blog.ID = id
	if err := h.service.Update(c.Request.Context(), blog); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, blog, "Blog updated")
}

// Delete handles DELETE /admin/blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid blog id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, nil, "Blog deleted")
}

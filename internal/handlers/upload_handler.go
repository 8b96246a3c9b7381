package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/upload"
)

// UploadHandler handles admin image uploads.
type UploadHandler struct {
	store *upload.Store
}

// NewUploadHandler creates a new UploadHandler instance.
func NewUploadHandler(store *upload.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadResponse carries the public URL of a stored image.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /admin/upload. The multipart form must carry an
// "image" file; "slug", "role" and "index" fields are optional and
// drive deterministic naming.
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		apperrors.BadRequest(c, "An image file is required")
		return
	}

	index := 0
	if raw := c.PostForm("index"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			index = n
		}
	}

	url, err := h.store.Save(fh, c.PostForm("slug"), c.PostForm("role"), index)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, UploadResponse{URL: url}, "Image uploaded")
}

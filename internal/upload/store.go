package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/crestview/estates-api/internal/config"
	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/validation"
)

// allowedTypes maps accepted image MIME types to their file extension.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Store persists uploaded images to a public-facing directory and
// reports their public URL.
type Store struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewStore creates a Store rooted at the configured upload directory.
func NewStore(cfg config.UploadConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %q: %w", cfg.Dir, err)
	}
	return &Store{
		dir:      cfg.Dir,
		baseURL:  cfg.BaseURL,
		maxBytes: cfg.MaxBytes,
	}, nil
}

// Save validates and persists one uploaded image, returning its public
// URL. The filename is deterministic (slug-role-index.ext) when a valid
// slug is provided, otherwise a timestamped random name is used.
func (s *Store) Save(fh *multipart.FileHeader, slug, role string, index int) (string, error) {
	if fh.Size > s.maxBytes {
		return "", apperrors.New(apperrors.KindValidation,
			fmt.Sprintf("Image exceeds the %dMB size limit", s.maxBytes/(1024*1024)))
	}

	file, err := fh.Open()
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindUnexpected, "Failed to read uploaded file", err)
	}
	defer file.Close()

	// Sniff the content type rather than trusting the client header.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", apperrors.Wrap(apperrors.KindUnexpected, "Failed to read uploaded file", err)
	}
	contentType := http.DetectContentType(head[:n])

	ext, ok := allowedTypes[contentType]
	if !ok {
		return "", apperrors.New(apperrors.KindValidation,
			"Unsupported image type: "+contentType)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", apperrors.Wrap(apperrors.KindUnexpected, "Failed to read uploaded file", err)
	}

	name := s.filename(slug, role, index, ext)

	// The name must resolve to a direct child of the upload directory.
	path := filepath.Join(s.dir, name)
	if filepath.Dir(path) != filepath.Clean(s.dir) {
		return "", apperrors.New(apperrors.KindValidation, "Invalid image name")
	}

	dest, err := os.Create(path)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindUnexpected, "Failed to store uploaded file", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, file); err != nil {
		return "", apperrors.Wrap(apperrors.KindUnexpected, "Failed to store uploaded file", err)
	}

	return s.baseURL + "/" + name, nil
}

// filename derives the stored name. A deterministic name lets repeat
// uploads for the same listing overwrite the previous image instead of
// accumulating orphans. Both slug and role must pass the slug check so
// neither can smuggle path separators into the name; anything else
// falls back to a timestamped random name.
func (s *Store) filename(slug, role string, index int, ext string) string {
	if role == "" {
		role = "image"
	}
	if validation.IsSlug(slug) && validation.IsSlug(role) {
		return fmt.Sprintf("%s-%s-%d%s", slug, role, index, ext)
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

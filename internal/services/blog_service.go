package services

import (
	"context"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/repository"
	"github.com/crestview/estates-api/internal/validation"
)

// BlogService defines business logic for blog posts.
type BlogService interface {
	List(ctx context.Context, filter repository.BlogFilter, params pagination.Params) ([]models.Blog, pagination.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Create(ctx context.Context, b *models.Blog) error
	Update(ctx context.Context, b *models.Blog) error
	Delete(ctx context.Context, id int64) error
}

type blogService struct {
	repo repository.BlogRepository
	log  *logger.Logger
}

// NewBlogService creates a new instance of BlogService.
func NewBlogService(repo repository.BlogRepository, log *logger.Logger) BlogService {
	return &blogService{repo: repo, log: log}
}

func (s *blogService) List(ctx context.Context, filter repository.BlogFilter, params pagination.Params) ([]models.Blog, pagination.Page, error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count blogs", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list blogs", err)
	}

	blogs, err := s.repo.List(ctx, filter, params.Limit, pagination.Offset(params.Page, params.Limit))
	if err != nil {
		s.log.Error("Failed to list blogs", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list blogs", err)
	}

	return blogs, pagination.Paginate(params.Page, params.Limit, total), nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	b, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to fetch blog", err, map[string]interface{}{"slug": slug})
		return nil, apperrors.Wrap(apperrors.KindUnexpected, "Failed to fetch blog", err)
	}
	if b == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "Blog not found")
	}
	return b, nil
}

// validate enforces the cross-field rules that binding tags cannot
// express against persisted state.
func (s *blogService) validate(b *models.Blog) error {
	if b.Slug == "" {
		b.Slug = validation.GenerateSlug(b.Title)
	}
	if !validation.IsSlug(b.Slug) {
		return apperrors.New(apperrors.KindValidation, "Blog slug is invalid")
	}
	if b.Type == models.BlogTypeVideo {
		if b.VideoURL == nil || *b.VideoURL == "" {
			return apperrors.New(apperrors.KindValidation, "Video blogs require a video URL")
		}
		if !validation.IsVideoURL(*b.VideoURL) {
			return apperrors.New(apperrors.KindValidation, "Blog video URL must be a YouTube or Vimeo link")
		}
	}
	return nil
}

func (s *blogService) Create(ctx context.Context, b *models.Blog) error {
	if err := s.validate(b); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return apperrors.New(apperrors.KindConflict, "Blog with this slug already exists")
		}
		s.log.Error("Failed to create blog", err, map[string]interface{}{"slug": b.Slug})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to create blog", err)
	}

	s.log.Info("Blog created", map[string]interface{}{"id": b.ID, "slug": b.Slug})
	return nil
}

func (s *blogService) Update(ctx context.Context, b *models.Blog) error {
	if err := s.validate(b); err != nil {
		return err
	}

	found, err := s.repo.Update(ctx, b)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return apperrors.New(apperrors.KindConflict, "Blog with this slug already exists")
		}
		s.log.Error("Failed to update blog", err, map[string]interface{}{"id": b.ID})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to update blog", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Blog not found")
	}
	return nil
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete blog", err, map[string]interface{}{"id": id})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to delete blog", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Blog not found")
	}

	s.log.Info("Blog deleted", map[string]interface{}{"id": id})
	return nil
}

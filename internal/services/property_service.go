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

// PropertyService defines business logic for property listings.
type PropertyService interface {
	List(ctx context.Context, filter repository.PropertyFilter, params pagination.Params) ([]models.Property, pagination.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Property, error)
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	Create(ctx context.Context, p *models.Property) error
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id int64) error
}

type propertyService struct {
	repo repository.PropertyRepository
	log  *logger.Logger
}

// NewPropertyService creates a new instance of PropertyService.
func NewPropertyService(repo repository.PropertyRepository, log *logger.Logger) PropertyService {
	return &propertyService{repo: repo, log: log}
}

func (s *propertyService) List(ctx context.Context, filter repository.PropertyFilter, params pagination.Params) ([]models.Property, pagination.Page, error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count properties", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list properties", err)
	}

	properties, err := s.repo.List(ctx, filter, params.Limit, pagination.Offset(params.Page, params.Limit))
	if err != nil {
		s.log.Error("Failed to list properties", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list properties", err)
	}

	return properties, pagination.Paginate(params.Page, params.Limit, total), nil
}

func (s *propertyService) GetBySlug(ctx context.Context, slug string) (*models.Property, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to fetch property", err, map[string]interface{}{"slug": slug})
		return nil, apperrors.Wrap(apperrors.KindUnexpected, "Failed to fetch property", err)
	}
	if p == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "Property not found")
	}
	return p, nil
}

func (s *propertyService) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to fetch property", err, map[string]interface{}{"id": id})
		return nil, apperrors.Wrap(apperrors.KindUnexpected, "Failed to fetch property", err)
	}
	if p == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "Property not found")
	}
	return p, nil
}

func (s *propertyService) Create(ctx context.Context, p *models.Property) error {
	if p.Slug == "" {
		p.Slug = validation.GenerateSlug(p.Name)
	}
	if !validation.IsSlug(p.Slug) {
		return apperrors.New(apperrors.KindValidation, "Property slug is invalid")
	}
	if p.Price != nil && *p.Price < 0 {
		return apperrors.New(apperrors.KindValidation, "Property price must be non-negative")
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return apperrors.New(apperrors.KindConflict, "Property with this slug already exists")
		}
		s.log.Error("Failed to create property", err, map[string]interface{}{"slug": p.Slug})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to create property", err)
	}

	s.log.Info("Property created", map[string]interface{}{"id": p.ID, "slug": p.Slug})
	return nil
}

func (s *propertyService) Update(ctx context.Context, p *models.Property) error {
	if p.Slug == "" {
		p.Slug = validation.GenerateSlug(p.Name)
	}
	if !validation.IsSlug(p.Slug) {
		return apperrors.New(apperrors.KindValidation, "Property slug is invalid")
	}
	if p.Price != nil && *p.Price < 0 {
		return apperrors.New(apperrors.KindValidation, "Property price must be non-negative")
	}

	found, err := s.repo.Update(ctx, p)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return apperrors.New(apperrors.KindConflict, "Property with this slug already exists")
		}
		s.log.Error("Failed to update property", err, map[string]interface{}{"id": p.ID})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to update property", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Property not found")
	}
	return nil
}

func (s *propertyService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete property", err, map[string]interface{}{"id": id})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to delete property", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Property not found")
	}

	s.log.Info("Property deleted", map[string]interface{}{"id": id})
	return nil
}

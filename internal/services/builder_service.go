package services

import (
	"context"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/repository"
)

// BuilderService defines business logic for property developers.
type BuilderService interface {
	List(ctx context.Context, filter repository.BuilderFilter, params pagination.Params) ([]models.Builder, pagination.Page, error)
	Create(ctx context.Context, b *models.Builder) error
	Update(ctx context.Context, b *models.Builder) error
	Delete(ctx context.Context, id int64) error
}

type builderService struct {
	repo repository.BuilderRepository
	log  *logger.Logger
}

// NewBuilderService creates a new instance of BuilderService.
func NewBuilderService(repo repository.BuilderRepository, log *logger.Logger) BuilderService {
	return &builderService{repo: repo, log: log}
}

func (s *builderService) List(ctx context.Context, filter repository.BuilderFilter, params pagination.Params) ([]models.Builder, pagination.Page, error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count builders", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list builders", err)
	}

	builders, err := s.repo.List(ctx, filter, params.Limit, pagination.Offset(params.Page, params.Limit))
	if err != nil {
		s.log.Error("Failed to list builders", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list builders", err)
	}

	return builders, pagination.Paginate(params.Page, params.Limit, total), nil
}

func (s *builderService) Create(ctx context.Context, b *models.Builder) error {
	if err := s.repo.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return apperrors.New(apperrors.KindConflict, "Builder with this name already exists")
		}
		s.log.Error("Failed to create builder", err, map[string]interface{}{"name": b.Name})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to create builder", err)
	}

	s.log.Info("Builder created", map[string]interface{}{"id": b.ID, "name": b.Name})
	return nil
}

func (s *builderService) Update(ctx context.Context, b *models.Builder) error {
	found, err := s.repo.Update(ctx, b)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return apperrors.New(apperrors.KindConflict, "Builder with this name already exists")
		}
		s.log.Error("Failed to update builder", err, map[string]interface{}{"id": b.ID})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to update builder", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Builder not found")
	}
	return nil
}

func (s *builderService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete builder", err, map[string]interface{}{"id": id})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to delete builder", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Builder not found")
	}
	return nil
}

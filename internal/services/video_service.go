package services

import (
	"context"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/repository"
)

// VideoService defines business logic for gallery videos.
type VideoService interface {
	List(ctx context.Context, filter repository.VideoFilter, params pagination.Params) ([]models.Video, pagination.Page, error)
	Create(ctx context.Context, v *models.Video) error
	Update(ctx context.Context, v *models.Video) error
	Delete(ctx context.Context, id int64) error
}

type videoService struct {
	repo repository.VideoRepository
	log  *logger.Logger
}

// NewVideoService creates a new instance of VideoService.
func NewVideoService(repo repository.VideoRepository, log *logger.Logger) VideoService {
	return &videoService{repo: repo, log: log}
}

func (s *videoService) List(ctx context.Context, filter repository.VideoFilter, params pagination.Params) ([]models.Video, pagination.Page, error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count videos", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list videos", err)
	}

	videos, err := s.repo.List(ctx, filter, params.Limit, pagination.Offset(params.Page, params.Limit))
	if err != nil {
		s.log.Error("Failed to list videos", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list videos", err)
	}

	return videos, pagination.Paginate(params.Page, params.Limit, total), nil
}

func (s *videoService) Create(ctx context.Context, v *models.Video) error {
	if err := s.repo.Create(ctx, v); err != nil {
		s.log.Error("Failed to create video", err, nil)
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to create video", err)
	}

	s.log.Info("Video created", map[string]interface{}{"id": v.ID})
	return nil
}

func (s *videoService) Update(ctx context.Context, v *models.Video) error {
	found, err := s.repo.Update(ctx, v)
	if err != nil {
		s.log.Error("Failed to update video", err, map[string]interface{}{"id": v.ID})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to update video", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Video not found")
	}
	return nil
}

func (s *videoService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete video", err, map[string]interface{}{"id": id})
		return apperrors.Wrap(apperrors.KindUnexpected, "Failed to delete video", err)
	}
	if !found {
		return apperrors.New(apperrors.KindNotFound, "Video not found")
	}
	return nil
}

package services

import (
	"context"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/repository"
)

// StatsService defines business logic for page-view counters.
type StatsService interface {
	Track(ctx context.Context, pageName string) (*models.PageStat, error)
	ListAll(ctx context.Context) ([]models.PageStat, error)
}

type statsService struct {
	repo repository.StatsRepository
	log  *logger.Logger
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(repo repository.StatsRepository, log *logger.Logger) StatsService {
	return &statsService{repo: repo, log: log}
}

func (s *statsService) Track(ctx context.Context, pageName string) (*models.PageStat, error) {
	stat, err := s.repo.Track(ctx, pageName)
	if err != nil {
		s.log.Error("Failed to track page stat", err, map[string]interface{}{"page": pageName})
		return nil, apperrors.Wrap(apperrors.KindUnexpected, "Failed to track page view", err)
	}
	return stat, nil
}

func (s *statsService) ListAll(ctx context.Context) ([]models.PageStat, error) {
	stats, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error("Failed to list page stats", err, nil)
		return nil, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list page stats", err)
	}
	return stats, nil
}

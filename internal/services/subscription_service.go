package services

import (
	"context"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/logger"
	"github.com/crestview/estates-api/internal/models"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/repository"
)

// Subscription result messages returned to the caller.
const (
	MsgSubscribed        = "Subscribed successfully"
	MsgAlreadySubscribed = "Email already subscribed"
)

// SubscriptionService defines business logic for email subscriptions.
type SubscriptionService interface {
	// Subscribe records the address and returns a human-readable
	// message. Resubscribing an existing address is a success.
	Subscribe(ctx context.Context, email string) (string, error)

	List(ctx context.Context, params pagination.Params) ([]models.EmailSubscription, pagination.Page, error)
}

type subscriptionService struct {
	repo repository.SubscriptionRepository
	log  *logger.Logger
}

// NewSubscriptionService creates a new instance of SubscriptionService.
func NewSubscriptionService(repo repository.SubscriptionRepository, log *logger.Logger) SubscriptionService {
	return &subscriptionService{repo: repo, log: log}
}

func (s *subscriptionService) Subscribe(ctx context.Context, email string) (string, error) {
	created, err := s.repo.Subscribe(ctx, email)
	if err != nil {
		s.log.Error("Failed to subscribe email", err, nil)
		return "", apperrors.Wrap(apperrors.KindUnexpected, "Failed to subscribe", err)
	}

	if !created {
		return MsgAlreadySubscribed, nil
	}

	s.log.Info("Email subscribed", nil)
	return MsgSubscribed, nil
}

func (s *subscriptionService) List(ctx context.Context, params pagination.Params) ([]models.EmailSubscription, pagination.Page, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count email subscriptions", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list subscriptions", err)
	}

	subs, err := s.repo.List(ctx, params.Limit, pagination.Offset(params.Page, params.Limit))
	if err != nil {
		s.log.Error("Failed to list email subscriptions", err, nil)
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.KindUnexpected, "Failed to list subscriptions", err)
	}

	return subs, pagination.Paginate(params.Page, params.Limit, total), nil
}

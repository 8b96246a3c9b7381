package repository

import (
	"context"
	"fmt"

	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/models"
)

// SubscriptionRepository defines data access for email subscriptions.
type SubscriptionRepository interface {
	// Subscribe inserts the address if it is not already present.
	// Returns true when a new row was created, false when the address
	// was already subscribed. Either way the call succeeds.
	Subscribe(ctx context.Context, email string) (bool, error)

	List(ctx context.Context, limit, offset int) ([]models.EmailSubscription, error)
	Count(ctx context.Context) (int64, error)
}

type subscriptionRepository struct {
	db *database.Database
}

// NewSubscriptionRepository creates a new instance of SubscriptionRepository.
func NewSubscriptionRepository(db *database.Database) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Subscribe(ctx context.Context, email string) (bool, error) {
	// ON CONFLICT DO NOTHING makes resubscription an idempotent no-op
	// under concurrency; no pre-check race is possible.
	tag, err := r.db.Pool.Exec(ctx,
		`INSERT INTO email_subscriptions (email)
		 VALUES ($1)
		 ON CONFLICT (email) DO NOTHING`,
		email,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert email subscription: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *subscriptionRepository) List(ctx context.Context, limit, offset int) ([]models.EmailSubscription, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, email, created_at
		 FROM email_subscriptions
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query email subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []models.EmailSubscription{}
	for rows.Next() {
		var s models.EmailSubscription
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan email subscription row: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating email subscription rows: %w", err)
	}
	return subs, nil
}

func (r *subscriptionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM email_subscriptions").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count email subscriptions: %w", err)
	}
	return total, nil
}

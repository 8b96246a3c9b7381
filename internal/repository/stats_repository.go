package repository

import (
	"context"
	"fmt"

	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/models"
)

// StatsRepository defines data access for page-view counters.
type StatsRepository interface {
	// Track records one click for pageName and returns the updated
	// counter. The increment happens inside a single upsert statement,
	// so concurrent clicks never lose updates.
	Track(ctx context.Context, pageName string) (*models.PageStat, error)

	// ListAll returns every counter, most-clicked first.
	ListAll(ctx context.Context) ([]models.PageStat, error)
}

type statsRepository struct {
	db *database.Database
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(db *database.Database) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Track(ctx context.Context, pageName string) (*models.PageStat, error) {
	var stat models.PageStat
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO page_stats (page_name, click_count, last_clicked)
		 VALUES ($1, 1, now())
		 ON CONFLICT (page_name) DO UPDATE
		   SET click_count = page_stats.click_count + 1,
		       last_clicked = now()
		 RETURNING id, page_name, click_count, last_clicked`,
		pageName,
	).Scan(&stat.ID, &stat.PageName, &stat.ClickCount, &stat.LastClicked)
	if err != nil {
		return nil, fmt.Errorf("failed to track page stat for %q: %w", pageName, err)
	}
	return &stat, nil
}

func (r *statsRepository) ListAll(ctx context.Context) ([]models.PageStat, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, page_name, click_count, last_clicked
		 FROM page_stats
		 ORDER BY click_count DESC, page_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query page stats: %w", err)
	}
	defer rows.Close()

	stats := []models.PageStat{}
	for rows.Next() {
		var s models.PageStat
		if err := rows.Scan(&s.ID, &s.PageName, &s.ClickCount, &s.LastClicked); err != nil {
			return nil, fmt.Errorf("failed to scan page stat row: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating page stat rows: %w", err)
	}
	return stats, nil
}

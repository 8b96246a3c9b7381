package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/models"
)

// VideoFilter holds the optional list filters for gallery videos.
type VideoFilter struct {
	Search string
}

// VideoRepository defines data access for gallery videos.
type VideoRepository interface {
	// List returns one page of videos in display order.
	List(ctx context.Context, filter VideoFilter, limit, offset int) ([]models.Video, error)
	Count(ctx context.Context, filter VideoFilter) (int64, error)

	// GetByID returns nil, nil when no video exists.
	GetByID(ctx context.Context, id int64) (*models.Video, error)

	Create(ctx context.Context, v *models.Video) error

	// Update returns false if the video does not exist.
	Update(ctx context.Context, v *models.Video) (bool, error)

	// Delete returns false if the video does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}

type videoRepository struct {
	db *database.Database
}

// NewVideoRepository creates a new instance of VideoRepository.
func NewVideoRepository(db *database.Database) VideoRepository {
	return &videoRepository{db: db}
}

func (f VideoFilter) build() *filterBuilder {
	b := &filterBuilder{}
	b.Search(f.Search, "title")
	return b
}

func (r *videoRepository) List(ctx context.Context, filter VideoFilter, limit, offset int) ([]models.Video, error) {
	b := filter.build()
	query := fmt.Sprintf(
		`SELECT id, title, video_link, display_order, created_at, updated_at
		 FROM videos%s ORDER BY display_order, id LIMIT $%d OFFSET $%d`,
		b.Where(), b.next(), b.next()+1,
	)
	args := append(b.Args(), limit, offset)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	videos := []models.Video{}
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.VideoLink, &v.Order, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan video row: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video rows: %w", err)
	}
	return videos, nil
}

func (r *videoRepository) Count(ctx context.Context, filter VideoFilter) (int64, error) {
	b := filter.build()
	var total int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM videos"+b.Where(), b.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}
	return total, nil
}

func (r *videoRepository) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	var v models.Video
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, title, video_link, display_order, created_at, updated_at
		 FROM videos WHERE id = $1`, id,
	).Scan(&v.ID, &v.Title, &v.VideoLink, &v.Order, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query video %d: %w", id, err)
	}
	return &v, nil
}

func (r *videoRepository) Create(ctx context.Context, v *models.Video) error {
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO videos (title, video_link, display_order)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		v.Title, v.VideoLink, v.Order,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}
	return nil
}

func (r *videoRepository) Update(ctx context.Context, v *models.Video) (bool, error) {
	err := r.db.Pool.QueryRow(ctx,
		`UPDATE videos
		 SET title = $1, video_link = $2, display_order = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING created_at, updated_at`,
		v.Title, v.VideoLink, v.Order, v.ID,
	).Scan(&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to update video %d: %w", v.ID, err)
	}
	return true, nil
}

func (r *videoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM videos WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete video %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

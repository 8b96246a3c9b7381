package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/models"
)

// BuilderFilter holds the optional list filters for builders.
type BuilderFilter struct {
	Search string
}

// BuilderRepository defines data access for property developers.
type BuilderRepository interface {
	List(ctx context.Context, filter BuilderFilter, limit, offset int) ([]models.Builder, error)
	Count(ctx context.Context, filter BuilderFilter) (int64, error)

	// GetByID returns nil, nil when no builder exists.
	GetByID(ctx context.Context, id int64) (*models.Builder, error)

	Create(ctx context.Context, b *models.Builder) error

	// Update returns false if the builder does not exist.
	Update(ctx context.Context, b *models.Builder) (bool, error)

	// Delete returns false if the builder does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}

type builderRepository struct {
	db *database.Database
}

// NewBuilderRepository creates a new instance of BuilderRepository.
func NewBuilderRepository(db *database.Database) BuilderRepository {
	return &builderRepository{db: db}
}

func (f BuilderFilter) build() *filterBuilder {
	b := &filterBuilder{}
	b.Search(f.Search, "name", "description")
	return b
}

func (r *builderRepository) List(ctx context.Context, filter BuilderFilter, limit, offset int) ([]models.Builder, error) {
	fb := filter.build()
	query := fmt.Sprintf(
		`SELECT id, name, logo_url, description, created_at, updated_at
		 FROM builders%s ORDER BY name LIMIT $%d OFFSET $%d`,
		fb.Where(), fb.next(), fb.next()+1,
	)
	args := append(fb.Args(), limit, offset)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query builders: %w", err)
	}
	defer rows.Close()

	builders := []models.Builder{}
	for rows.Next() {
		var b models.Builder
		if err := rows.Scan(&b.ID, &b.Name, &b.LogoURL, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan builder row: %w", err)
		}
		builders = append(builders, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating builder rows: %w", err)
	}
	return builders, nil
}

func (r *builderRepository) Count(ctx context.Context, filter BuilderFilter) (int64, error) {
	fb := filter.build()
	var total int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM builders"+fb.Where(), fb.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count builders: %w", err)
	}
	return total, nil
}

func (r *builderRepository) GetByID(ctx context.Context, id int64) (*models.Builder, error) {
	var b models.Builder
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, name, logo_url, description, created_at, updated_at
		 FROM builders WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.LogoURL, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query builder %d: %w", id, err)
	}
	return &b, nil
}

func (r *builderRepository) Create(ctx context.Context, b *models.Builder) error {
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO builders (name, logo_url, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		b.Name, b.LogoURL, b.Description,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert builder: %w", err)
	}
	return nil
}

func (r *builderRepository) Update(ctx context.Context, b *models.Builder) (bool, error) {
	err := r.db.Pool.QueryRow(ctx,
		`UPDATE builders
		 SET name = $1, logo_url = $2, description = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING created_at, updated_at`,
		b.Name, b.LogoURL, b.Description, b.ID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to update builder %d: %w", b.ID, err)
	}
	return true, nil
}

func (r *builderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM builders WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete builder %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

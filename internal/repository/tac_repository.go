package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/models"
)

// TACFilter holds the optional list filters for TAC registrations.
type TACFilter struct {
	Search string
}

// TACRepository defines data access for The Advisors Club registrations.
type TACRepository interface {
	Create(ctx context.Context, reg *models.TACRegistration) error
	List(ctx context.Context, filter TACFilter, limit, offset int) ([]models.TACRegistration, error)
	Count(ctx context.Context, filter TACFilter) (int64, error)

	// GetByID returns nil, nil when no registration exists.
	GetByID(ctx context.Context, id int64) (*models.TACRegistration, error)

	// Delete returns false if the registration does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}

type tacRepository struct {
	db *database.Database
}

// NewTACRepository creates a new instance of TACRepository.
func NewTACRepository(db *database.Database) TACRepository {
	return &tacRepository{db: db}
}

func (f TACFilter) build() *filterBuilder {
	b := &filterBuilder{}
	b.Search(f.Search, "name", "email", "phone")
	return b
}

func (r *tacRepository) Create(ctx context.Context, reg *models.TACRegistration) error {
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO tac_registrations (name, email, phone, address)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		reg.Name, reg.Email, reg.Phone, reg.Address,
	).Scan(&reg.ID, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert TAC registration: %w", err)
	}
	return nil
}

func (r *tacRepository) List(ctx context.Context, filter TACFilter, limit, offset int) ([]models.TACRegistration, error) {
	b := filter.build()
	query := fmt.Sprintf(
		`SELECT id, name, email, phone, address, created_at, updated_at
		 FROM tac_registrations%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		b.Where(), b.next(), b.next()+1,
	)
	args := append(b.Args(), limit, offset)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query TAC registrations: %w", err)
	}
	defer rows.Close()

	regs := []models.TACRegistration{}
	for rows.Next() {
		var reg models.TACRegistration
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Email, &reg.Phone, &reg.Address, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan TAC registration row: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating TAC registration rows: %w", err)
	}
	return regs, nil
}

func (r *tacRepository) Count(ctx context.Context, filter TACFilter) (int64, error) {
	b := filter.build()
	var total int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM tac_registrations"+b.Where(), b.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count TAC registrations: %w", err)
	}
	return total, nil
}

func (r *tacRepository) GetByID(ctx context.Context, id int64) (*models.TACRegistration, error) {
	var reg models.TACRegistration
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, name, email, phone, address, created_at, updated_at
		 FROM tac_registrations WHERE id = $1`, id,
	).Scan(&reg.ID, &reg.Name, &reg.Email, &reg.Phone, &reg.Address, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query TAC registration %d: %w", id, err)
	}
	return &reg, nil
}

func (r *tacRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM tac_registrations WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete TAC registration %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

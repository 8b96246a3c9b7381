package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/models"
)

// CareerFilter holds the optional list filters for career applications.
type CareerFilter struct {
	Search         string
	ReferralSource string
}

// CareerRepository defines data access for job applications.
type CareerRepository interface {
	// Create inserts an application. The applications table has a
	// unique index on email; a duplicate surfaces as a unique
	// violation, detectable with IsUniqueViolation.
	Create(ctx context.Context, a *models.CareerApplication) error

	List(ctx context.Context, filter CareerFilter, limit, offset int) ([]models.CareerApplication, error)
	Count(ctx context.Context, filter CareerFilter) (int64, error)

	// GetByID returns nil, nil when no application exists.
	GetByID(ctx context.Context, id int64) (*models.CareerApplication, error)

	// Delete returns false if the application does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}

type careerRepository struct {
	db *database.Database
}

// NewCareerRepository creates a new instance of CareerRepository.
func NewCareerRepository(db *database.Database) CareerRepository {
	return &careerRepository{db: db}
}

func (f CareerFilter) build() *filterBuilder {
	b := &filterBuilder{}
	b.Search(f.Search, "name", "email")
	b.Equal("referral_source", f.ReferralSource)
	return b
}

const careerColumns = `id, name, email, whatsapp_number, referral_source, referral_other, resume_link, created_at, updated_at`

func scanCareerApplication(row pgx.Row) (*models.CareerApplication, error) {
	var a models.CareerApplication
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.WhatsappNumber, &a.ReferralSource,
		&a.ReferralOther, &a.ResumeLink, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *careerRepository) Create(ctx context.Context, a *models.CareerApplication) error {
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO career_applications
		   (name, email, whatsapp_number, referral_source, referral_other, resume_link)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.Email, a.WhatsappNumber, a.ReferralSource, a.ReferralOther, a.ResumeLink,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("failed to insert career application: %w", err)
	}
	return nil
}

func (r *careerRepository) List(ctx context.Context, filter CareerFilter, limit, offset int) ([]models.CareerApplication, error) {
	b := filter.build()
	query := fmt.Sprintf(
		"SELECT %s FROM career_applications%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		careerColumns, b.Where(), b.next(), b.next()+1,
	)
	args := append(b.Args(), limit, offset)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query career applications: %w", err)
	}
	defer rows.Close()

	apps := []models.CareerApplication{}
	for rows.Next() {
		a, err := scanCareerApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan career application row: %w", err)
		}
		apps = append(apps, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating career application rows: %w", err)
	}
	return apps, nil
}

func (r *careerRepository) Count(ctx context.Context, filter CareerFilter) (int64, error) {
	b := filter.build()
	var total int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM career_applications"+b.Where(), b.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count career applications: %w", err)
	}
	return total, nil
}

func (r *careerRepository) GetByID(ctx context.Context, id int64) (*models.CareerApplication, error) {
	query := fmt.Sprintf("SELECT %s FROM career_applications WHERE id = $1", careerColumns)
	a, err := scanCareerApplication(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query career application %d: %w", id, err)
	}
	return a, nil
}

func (r *careerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM career_applications WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete career application %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

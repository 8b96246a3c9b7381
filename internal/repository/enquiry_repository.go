package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/models"
)

// EnquiryFilter holds the optional list filters for enquiries.
type EnquiryFilter struct {
	Search string
	Type   string
}

// EnquiryRepository defines data access for contact-form enquiries.
type EnquiryRepository interface {
	Create(ctx context.Context, e *models.Enquiry) error
	List(ctx context.Context, filter EnquiryFilter, limit, offset int) ([]models.Enquiry, error)
	Count(ctx context.Context, filter EnquiryFilter) (int64, error)

	// GetByID returns nil, nil when no enquiry exists.
	GetByID(ctx context.Context, id int64) (*models.Enquiry, error)

	// Delete returns false if the enquiry does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}

type enquiryRepository struct {
	db *database.Database
}

// NewEnquiryRepository creates a new instance of EnquiryRepository.
func NewEnquiryRepository(db *database.Database) EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (f EnquiryFilter) build() *filterBuilder {
	b := &filterBuilder{}
	b.Search(f.Search, "name", "email", "message")
	b.Equal("type", f.Type)
	return b
}

const enquiryColumns = `id, name, email, phone, message, type, property_id, created_at, updated_at`

func scanEnquiry(row pgx.Row) (*models.Enquiry, error) {
	var e models.Enquiry
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Message, &e.Type, &e.PropertyID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enquiryRepository) Create(ctx context.Context, e *models.Enquiry) error {
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO enquiries (name, email, phone, message, type, property_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		e.Name, e.Email, e.Phone, e.Message, e.Type, e.PropertyID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert enquiry: %w", err)
	}
	return nil
}

func (r *enquiryRepository) List(ctx context.Context, filter EnquiryFilter, limit, offset int) ([]models.Enquiry, error) {
	b := filter.build()
	query := fmt.Sprintf(
		"SELECT %s FROM enquiries%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		enquiryColumns, b.Where(), b.next(), b.next()+1,
	)
	args := append(b.Args(), limit, offset)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query enquiries: %w", err)
	}
	defer rows.Close()

	enquiries := []models.Enquiry{}
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enquiry row: %w", err)
		}
		enquiries = append(enquiries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enquiry rows: %w", err)
	}
	return enquiries, nil
}

func (r *enquiryRepository) Count(ctx context.Context, filter EnquiryFilter) (int64, error) {
	b := filter.build()
	var total int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM enquiries"+b.Where(), b.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count enquiries: %w", err)
	}
	return total, nil
}

func (r *enquiryRepository) GetByID(ctx context.Context, id int64) (*models.Enquiry, error) {
	query := fmt.Sprintf("SELECT %s FROM enquiries WHERE id = $1", enquiryColumns)
	e, err := scanEnquiry(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query enquiry %d: %w", id, err)
	}
	return e, nil
}

func (r *enquiryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM enquiries WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete enquiry %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

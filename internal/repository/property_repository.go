package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/models"
)

// PropertyFilter holds the optional list filters for properties.
// Empty fields impose no constraint.
type PropertyFilter struct {
	Search  string
	Type    string
	Status  string
	Builder string
}

// PropertyRepository defines data access for property listings.
type PropertyRepository interface {
	// List returns one page of properties matching the filter, newest first.
	List(ctx context.Context, filter PropertyFilter, limit, offset int) ([]models.Property, error)

	// Count returns the number of properties matching the filter.
	Count(ctx context.Context, filter PropertyFilter) (int64, error)

	// GetByID returns the property with its images and configurations.
	// Returns nil, nil if no property exists (not an error).
	GetByID(ctx context.Context, id int64) (*models.Property, error)

	// GetBySlug returns the property with its images and configurations.
	// Returns nil, nil if no property exists (not an error).
	GetBySlug(ctx context.Context, slug string) (*models.Property, error)

	// Create inserts the property and its images and configurations,
	// assigning IDs and timestamps.
	Create(ctx context.Context, p *models.Property) error

	// Update rewrites the property row and replaces its images and
	// configurations. Returns false if the property does not exist.
	Update(ctx context.Context, p *models.Property) (bool, error)

	// Delete removes the property. Returns false if it does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}

type propertyRepository struct {
	db *database.Database
}

// NewPropertyRepository creates a new instance of PropertyRepository.
func NewPropertyRepository(db *database.Database) PropertyRepository {
	return &propertyRepository{db: db}
}

func (f PropertyFilter) build() *filterBuilder {
	b := &filterBuilder{}
	b.Search(f.Search, "name", "builder", "location", "description")
	b.Equal("type", f.Type)
	b.Equal("status", f.Status)
	b.Equal("builder", f.Builder)
	return b
}

const propertyColumns = `
	id, name, slug, type, status, builder, location, description, price,
	created_at, updated_at`

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Type,
		&p.Status,
		&p.Builder,
		&p.Location,
		&p.Description,
		&p.Price,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) List(ctx context.Context, filter PropertyFilter, limit, offset int) ([]models.Property, error) {
	b := filter.build()
	query := fmt.Sprintf(
		"SELECT %s FROM properties%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		propertyColumns, b.Where(), b.next(), b.next()+1,
	)
	args := append(b.Args(), limit, offset)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	if err := r.loadRelations(ctx, properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Count(ctx context.Context, filter PropertyFilter) (int64, error) {
	b := filter.build()
	query := "SELECT COUNT(*) FROM properties" + b.Where()

	var total int64
	if err := r.db.Pool.QueryRow(ctx, query, b.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return total, nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = $1", propertyColumns)
	return r.getOne(ctx, query, id)
}

func (r *propertyRepository) GetBySlug(ctx context.Context, slug string) (*models.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE slug = $1", propertyColumns)
	return r.getOne(ctx, query, slug)
}

func (r *propertyRepository) getOne(ctx context.Context, query string, arg any) (*models.Property, error) {
	p, err := scanProperty(r.db.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query property: %w", err)
	}

	batch := []models.Property{*p}
	if err := r.loadRelations(ctx, batch); err != nil {
		return nil, err
	}
	return &batch[0], nil
}

func (r *propertyRepository) Create(ctx context.Context, p *models.Property) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO properties (name, slug, type, status, builder, location, description, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRow(ctx, query,
		p.Name, p.Slug, p.Type, p.Status, p.Builder, p.Location, p.Description, p.Price,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}

	if err := r.insertRelations(ctx, tx, p); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit property insert: %w", err)
	}
	return nil
}

func (r *propertyRepository) Update(ctx context.Context, p *models.Property) (bool, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE properties
		SET name = $1, slug = $2, type = $3, status = $4, builder = $5,
		    location = $6, description = $7, price = $8, updated_at = now()
		WHERE id = $9
		RETURNING created_at, updated_at`

	err = tx.QueryRow(ctx, query,
		p.Name, p.Slug, p.Type, p.Status, p.Builder, p.Location, p.Description, p.Price, p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to update property %d: %w", p.ID, err)
	}

	// Replace the gallery and configurations wholesale; order comes
	// from the request.
	if _, err := tx.Exec(ctx, "DELETE FROM property_images WHERE property_id = $1", p.ID); err != nil {
		return false, fmt.Errorf("failed to clear property images: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM property_configurations WHERE property_id = $1", p.ID); err != nil {
		return false, fmt.Errorf("failed to clear property configurations: %w", err)
	}
	if err := r.insertRelations(ctx, tx, p); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit property update: %w", err)
	}
	return true, nil
}

func (r *propertyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete property %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *propertyRepository) insertRelations(ctx context.Context, tx pgx.Tx, p *models.Property) error {
	for i := range p.Images {
		img := &p.Images[i]
		img.PropertyID = p.ID
		img.Position = i
		err := tx.QueryRow(ctx, `
			INSERT INTO property_images (property_id, url, role, position)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			img.PropertyID, img.URL, img.Role, img.Position,
		).Scan(&img.ID)
		if err != nil {
			return fmt.Errorf("failed to insert property image: %w", err)
		}
	}

	for i := range p.Configurations {
		cfg := &p.Configurations[i]
		cfg.PropertyID = p.ID
		err := tx.QueryRow(ctx, `
			INSERT INTO property_configurations (property_id, name, area, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			cfg.PropertyID, cfg.Name, cfg.Area, cfg.Price,
		).Scan(&cfg.ID)
		if err != nil {
			return fmt.Errorf("failed to insert property configuration: %w", err)
		}
	}
	return nil
}

// loadRelations attaches images and configurations to the given
// properties in a single query per relation.
func (r *propertyRepository) loadRelations(ctx context.Context, properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(properties))
	index := make(map[int64]*models.Property, len(properties))
	for i := range properties {
		properties[i].Images = []models.PropertyImage{}
		properties[i].Configurations = []models.PropertyConfiguration{}
		ids = append(ids, properties[i].ID)
		index[properties[i].ID] = &properties[i]
	}

	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, property_id, url, role, position
		FROM property_images
		WHERE property_id = ANY($1)
		ORDER BY property_id, position`, ids)
	if err != nil {
		return fmt.Errorf("failed to query property images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img models.PropertyImage
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.URL, &img.Role, &img.Position); err != nil {
			return fmt.Errorf("failed to scan property image: %w", err)
		}
		if p, ok := index[img.PropertyID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating property images: %w", err)
	}

	cfgRows, err := r.db.Pool.Query(ctx, `
		SELECT id, property_id, name, area, price
		FROM property_configurations
		WHERE property_id = ANY($1)
		ORDER BY property_id, id`, ids)
	if err != nil {
		return fmt.Errorf("failed to query property configurations: %w", err)
	}
	defer cfgRows.Close()

	for cfgRows.Next() {
		var cfg models.PropertyConfiguration
		if err := cfgRows.Scan(&cfg.ID, &cfg.PropertyID, &cfg.Name, &cfg.Area, &cfg.Price); err != nil {
			return fmt.Errorf("failed to scan property configuration: %w", err)
		}
		if p, ok := index[cfg.PropertyID]; ok {
			p.Configurations = append(p.Configurations, cfg)
		}
	}
	if err := cfgRows.Err(); err != nil {
		return fmt.Errorf("error iterating property configurations: %w", err)
	}

	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/models"
)

// BlogFilter holds the optional list filters for blogs.
type BlogFilter struct {
	Search    string
	Type      string
	Published string // "true", "false" or empty for no constraint
}

// BlogRepository defines data access for blog posts.
type BlogRepository interface {
	List(ctx context.Context, filter BlogFilter, limit, offset int) ([]models.Blog, error)
	Count(ctx context.Context, filter BlogFilter) (int64, error)

	// GetByID returns nil, nil when no blog exists.
	GetByID(ctx context.Context, id int64) (*models.Blog, error)

	// GetBySlug returns nil, nil when no blog exists.
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)

	Create(ctx context.Context, b *models.Blog) error

	// Update returns false if the blog does not exist.
	Update(ctx context.Context, b *models.Blog) (bool, error)

	// Delete returns false if the blog does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}

type blogRepository struct {
	db *database.Database
}

// NewBlogRepository creates a new instance of BlogRepository.
func NewBlogRepository(db *database.Database) BlogRepository {
	return &blogRepository{db: db}
}

func (f BlogFilter) build() *filterBuilder {
	b := &filterBuilder{}
	b.Search(f.Search, "title", "content")
	b.Equal("type", f.Type)
	b.EqualBool("published", f.Published)
	return b
}

const blogColumns = `
	id, title, slug, type, content, cover_url, video_url, published,
	created_at, updated_at`

func scanBlog(row pgx.Row) (*models.Blog, error) {
	var b models.Blog
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Slug,
		&b.Type,
		&b.Content,
		&b.CoverURL,
		&b.VideoURL,
		&b.Published,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepository) List(ctx context.Context, filter BlogFilter, limit, offset int) ([]models.Blog, error) {
	b := filter.build()
	query := fmt.Sprintf(
		"SELECT %s FROM blogs%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		blogColumns, b.Where(), b.next(), b.next()+1,
	)
	args := append(b.Args(), limit, offset)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog row: %w", err)
		}
		blogs = append(blogs, *blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog rows: %w", err)
	}
	return blogs, nil
}

func (r *blogRepository) Count(ctx context.Context, filter BlogFilter) (int64, error) {
	b := filter.build()
	var total int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM blogs"+b.Where(), b.Args()...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count blogs: %w", err)
	}
	return total, nil
}

func (r *blogRepository) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	query := fmt.Sprintf("SELECT %s FROM blogs WHERE id = $1", blogColumns)
	blog, err := scanBlog(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query blog %d: %w", id, err)
	}
	return blog, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	query := fmt.Sprintf("SELECT %s FROM blogs WHERE slug = $1", blogColumns)
	blog, err := scanBlog(r.db.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query blog %q: %w", slug, err)
	}
	return blog, nil
}

func (r *blogRepository) Create(ctx context.Context, b *models.Blog) error {
	query := `
		INSERT INTO blogs (title, slug, type, content, cover_url, video_url, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.Pool.QueryRow(ctx, query,
		b.Title, b.Slug, b.Type, b.Content, b.CoverURL, b.VideoURL, b.Published,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert blog: %w", err)
	}
	return nil
}

func (r *blogRepository) Update(ctx context.Context, b *models.Blog) (bool, error) {
	query := `
		UPDATE blogs
		SET title = $1, slug = $2, type = $3, content = $4, cover_url = $5,
		    video_url = $6, published = $7, updated_at = now()
		WHERE id = $8
		RETURNING created_at, updated_at`

	err := r.db.Pool.QueryRow(ctx, query,
		b.Title, b.Slug, b.Type, b.Content, b.CoverURL, b.VideoURL, b.Published, b.ID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to update blog %d: %w", b.ID, err)
	}
	return true, nil
}

func (r *blogRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM blogs WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete blog %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crestview/estates-api/internal/database"
	"github.com/crestview/estates-api/internal/models"
)

// AdminRepository defines data access for backend operator accounts.
type AdminRepository interface {
	// GetByEmail returns nil, nil when no account exists.
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

type adminRepository struct {
	db *database.Database
}

// NewAdminRepository creates a new instance of AdminRepository.
func NewAdminRepository(db *database.Database) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var u models.AdminUser
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role, created_at, updated_at
		 FROM admin_users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query admin user: %w", err)
	}
	return &u, nil
}

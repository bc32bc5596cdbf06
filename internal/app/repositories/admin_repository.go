package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
)

// AdminRepository handles database operations for administrator accounts
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// GetByUsername retrieves an admin by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `
		SELECT admin_id, username, password
		FROM admins
		WHERE username = $1
	`

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}

// Create inserts an admin account. Used by the seeder.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (username, password)
		VALUES ($1, $2)
		RETURNING admin_id
	`

	err := r.db.QueryRow(ctx, query, admin.Username, admin.Password).Scan(&admin.ID)
	if err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

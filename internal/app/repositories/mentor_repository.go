package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/db"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
	"github.com/ozanc/mentorhub/internal/pkg/dberrors"
)

// MentorRepository handles database operations for mentors
type MentorRepository struct {
	db *pgxpool.Pool
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{
		db: db,
	}
}

// Create creates a new mentor. The password must already be hashed.
func (r *MentorRepository) Create(ctx context.Context, mentor *models.Mentor) error {
	query := `
		INSERT INTO mentors (name, email, password, department)
		VALUES ($1, $2, $3, $4)
		RETURNING mentor_id
	`

	err := r.db.QueryRow(ctx, query,
		mentor.Name,
		mentor.Email,
		mentor.Password,
		mentor.Department,
	).Scan(&mentor.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mentors_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating mentor: %w", err)
	}

	return nil
}

// GetByID retrieves a mentor by ID
func (r *MentorRepository) GetByID(ctx context.Context, id int64) (*models.Mentor, error) {
	query := `
		SELECT mentor_id, name, email, password, department
		FROM mentors
		WHERE mentor_id = $1
	`

	var mentor models.Mentor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&mentor.ID,
		&mentor.Name,
		&mentor.Email,
		&mentor.Password,
		&mentor.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}

	return &mentor, nil
}

// GetByEmail retrieves a mentor by email for authentication
func (r *MentorRepository) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	query := `
		SELECT mentor_id, name, email, password, department
		FROM mentors
		WHERE email = $1
	`

	var mentor models.Mentor
	err := r.db.QueryRow(ctx, query, email).Scan(
		&mentor.ID,
		&mentor.Name,
		&mentor.Email,
		&mentor.Password,
		&mentor.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}

	return &mentor, nil
}

// GetAll retrieves all mentors
func (r *MentorRepository) GetAll(ctx context.Context) ([]*models.Mentor, error) {
	query := `
		SELECT mentor_id, name, email, department
		FROM mentors
		ORDER BY mentor_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentors []*models.Mentor
	for rows.Next() {
		var mentor models.Mentor
		if err := rows.Scan(
			&mentor.ID,
			&mentor.Name,
			&mentor.Email,
			&mentor.Department,
		); err != nil {
			return nil, err
		}
		mentors = append(mentors, &mentor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mentors, nil
}

// Update writes every mutable column of the mentor row. Merge semantics
// for partial payloads are applied by the service before calling this.
func (r *MentorRepository) Update(ctx context.Context, mentor *models.Mentor) error {
	query := `
		UPDATE mentors
		SET name = $1, email = $2, password = $3, department = $4
		WHERE mentor_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		mentor.Name,
		mentor.Email,
		mentor.Password,
		mentor.Department,
		mentor.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mentors_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating mentor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorNotFound
	}

	return nil
}

// UpdatePassword overwrites the stored credential hash
func (r *MentorRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE mentors SET password = $1 WHERE mentor_id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("error updating mentor password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorNotFound
	}

	return nil
}

// DeleteCascade removes a mentor, every project assigned to that mentor
// (regardless of status), and clears the mentor reference on every student
// pointing at them. All steps run in one transaction.
func (r *MentorRepository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM mentors WHERE mentor_id = $1)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking mentor existence: %w", err)
		}
		if !exists {
			return apperrors.ErrMentorNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE mentor_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting mentor projects: %w", err)
		}

		if _, err := tx.Exec(ctx, `UPDATE students SET mentor_id = NULL WHERE mentor_id = $1`, id); err != nil {
			return fmt.Errorf("error unassigning students: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM mentors WHERE mentor_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting mentor: %w", err)
		}

		return nil
	})
}

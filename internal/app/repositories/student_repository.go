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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create creates a new student. The password must already be hashed.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, prn, email, password, mentor_id, github_link)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING student_id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.PRN,
		student.Email,
		student.Password,
		student.MentorID,
		student.GithubLink,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_prn_key") {
			return apperrors.ErrPRNAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT student_id, name, prn, email, password, mentor_id, github_link
		FROM students
		WHERE student_id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.PRN,
		&student.Email,
		&student.Password,
		&student.MentorID,
		&student.GithubLink,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByEmail retrieves a student by email for authentication
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT student_id, name, prn, email, password, mentor_id, github_link
		FROM students
		WHERE email = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, email).Scan(
		&student.ID,
		&student.Name,
		&student.PRN,
		&student.Email,
		&student.Password,
		&student.MentorID,
		&student.GithubLink,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves every student with the assigned mentor joined in.
// The mentor relation is nil for unassigned students.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT s.student_id, s.name, s.prn, s.email, s.mentor_id, s.github_link,
		       m.mentor_id, m.name, m.email, m.department
		FROM students s
		LEFT JOIN mentors m ON s.mentor_id = m.mentor_id
		ORDER BY s.student_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var mentorID *int64
		var mentorName, mentorEmail, mentorDept *string
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.PRN,
			&student.Email,
			&student.MentorID,
			&student.GithubLink,
			&mentorID,
			&mentorName,
			&mentorEmail,
			&mentorDept,
		); err != nil {
			return nil, err
		}
		if mentorID != nil {
			student.Mentor = &models.Mentor{
				ID:         *mentorID,
				Name:       *mentorName,
				Email:      *mentorEmail,
				Department: mentorDept,
			}
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByMentorID retrieves all students assigned to a mentor
func (r *StudentRepository) GetByMentorID(ctx context.Context, mentorID int64) ([]*models.Student, error) {
	query := `
		SELECT student_id, name, prn, email, mentor_id, github_link
		FROM students
		WHERE mentor_id = $1
		ORDER BY student_id
	`

	rows, err := r.db.Query(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.PRN,
			&student.Email,
			&student.MentorID,
			&student.GithubLink,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update writes every mutable column of the student row. Merge semantics
// for partial payloads are applied by the service before calling this.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, prn = $2, email = $3, password = $4, mentor_id = $5, github_link = $6
		WHERE student_id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.PRN,
		student.Email,
		student.Password,
		student.MentorID,
		student.GithubLink,
		student.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_prn_key") {
			return apperrors.ErrPRNAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdatePassword overwrites the stored credential hash
func (r *StudentRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE students SET password = $1 WHERE student_id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("error updating student password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateGithubLink sets the student's external repository link
func (r *StudentRepository) UpdateGithubLink(ctx context.Context, id int64, githubLink string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE students SET github_link = $1 WHERE student_id = $2`, githubLink, id)
	if err != nil {
		return fmt.Errorf("error updating github link: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SetMentor overwrites the student's mentor reference
func (r *StudentRepository) SetMentor(ctx context.Context, studentID, mentorID int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE students SET mentor_id = $1 WHERE student_id = $2`, mentorID, studentID)
	if err != nil {
		return fmt.Errorf("error assigning mentor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteCascade removes a student together with their non-Approved projects.
// The guard count, the project deletions, the mentor-reference clear and the
// student deletion all run in one transaction: a student with any Approved
// project is never partially deleted.
func (r *StudentRepository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking student existence: %w", err)
		}
		if !exists {
			return apperrors.ErrStudentNotFound
		}

		var approved int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM projects WHERE student_id = $1 AND status = $2`,
			id, models.StatusApproved,
		).Scan(&approved)
		if err != nil {
			return fmt.Errorf("error counting approved projects: %w", err)
		}
		if approved > 0 {
			return apperrors.ErrStudentHasApprovedProjects
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM projects WHERE student_id = $1 AND status != $2`,
			id, models.StatusApproved,
		); err != nil {
			return fmt.Errorf("error deleting student projects: %w", err)
		}

		if _, err := tx.Exec(ctx, `UPDATE students SET mentor_id = NULL WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error clearing mentor reference: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}

		return nil
	})
}

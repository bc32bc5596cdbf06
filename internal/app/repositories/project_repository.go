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

// ProjectWithNames is a project row joined with the owning student's name
// and the assigned mentor's name. MentorName is nil when unassigned.
type ProjectWithNames struct {
	models.Project
	StudentName string
	MentorName  *string
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create inserts a new project and fills in the generated id and timestamps
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (project_id, title, description, student_id, mentor_id,
		                      status, progress_percentage, mentor_feedback, github_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, submission_date, last_updated
	`

	err := r.db.QueryRow(ctx, query,
		project.PublicID,
		project.Title,
		project.Description,
		project.StudentID,
		project.MentorID,
		project.Status,
		project.ProgressPercentage,
		project.MentorFeedback,
		project.GithubLink,
	).Scan(&project.ID, &project.SubmissionDate, &project.LastUpdated)
	if err != nil {
		return fmt.Errorf("error creating project: %w", err)
	}

	return nil
}

// ExistsByPublicID reports whether a project already uses the display identifier
func (r *ProjectRepository) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM projects WHERE project_id = $1)`,
		publicID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking public id: %w", err)
	}

	return exists, nil
}

// GetByID retrieves a project by its internal primary key
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `
		SELECT id, project_id, title, description, student_id, mentor_id,
		       status, progress_percentage, mentor_feedback, github_link,
		       submission_date, last_updated
		FROM projects
		WHERE id = $1
	`

	var project models.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.PublicID,
		&project.Title,
		&project.Description,
		&project.StudentID,
		&project.MentorID,
		&project.Status,
		&project.ProgressPercentage,
		&project.MentorFeedback,
		&project.GithubLink,
		&project.SubmissionDate,
		&project.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	return &project, nil
}

// UpdateReview writes the mentor-owned review fields. Merge semantics for
// omitted feedback/progress are applied by the service before calling this.
func (r *ProjectRepository) UpdateReview(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET status = $1, progress_percentage = $2, mentor_feedback = $3, last_updated = now()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		project.Status,
		project.ProgressPercentage,
		project.MentorFeedback,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating project review: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// UpdateDetails writes the student-writable descriptive fields
func (r *ProjectRepository) UpdateDetails(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, github_link = $3, last_updated = now()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		project.Title,
		project.Description,
		project.GithubLink,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating project details: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// Delete removes a project unless its status is Approved. The status guard
// and the delete are one conditional statement, so a concurrent approval
// cannot slip between check and delete.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND status != $2`,
		id, models.StatusApproved)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking project existence: %w", err)
		}
		if exists {
			return apperrors.ErrProjectApproved
		}
		return apperrors.ErrProjectNotFound
	}

	return nil
}

const projectWithNamesSelect = `
	SELECT p.id, p.project_id, p.title, p.description, p.student_id, p.mentor_id,
	       p.status, p.progress_percentage, p.mentor_feedback, p.github_link,
	       p.submission_date, p.last_updated,
	       s.name, m.name
	FROM projects p
	JOIN students s ON p.student_id = s.student_id
	LEFT JOIN mentors m ON p.mentor_id = m.mentor_id
`

func scanProjectWithNames(rows pgx.Rows) (*ProjectWithNames, error) {
	var row ProjectWithNames
	err := rows.Scan(
		&row.ID,
		&row.PublicID,
		&row.Title,
		&row.Description,
		&row.StudentID,
		&row.MentorID,
		&row.Status,
		&row.ProgressPercentage,
		&row.MentorFeedback,
		&row.GithubLink,
		&row.SubmissionDate,
		&row.LastUpdated,
		&row.StudentName,
		&row.MentorName,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ProjectRepository) queryProjectsWithNames(ctx context.Context, query string, args ...interface{}) ([]*ProjectWithNames, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*ProjectWithNames
	for rows.Next() {
		row, err := scanProjectWithNames(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ListAll retrieves every project with student and mentor names joined in
func (r *ProjectRepository) ListAll(ctx context.Context) ([]*ProjectWithNames, error) {
	return r.queryProjectsWithNames(ctx, projectWithNamesSelect+` ORDER BY p.id`)
}

// ListByMentor retrieves the projects assigned to a mentor
func (r *ProjectRepository) ListByMentor(ctx context.Context, mentorID int64) ([]*ProjectWithNames, error) {
	return r.queryProjectsWithNames(ctx, projectWithNamesSelect+` WHERE p.mentor_id = $1 ORDER BY p.id`, mentorID)
}

// ListByStudent retrieves the projects owned by a student
func (r *ProjectRepository) ListByStudent(ctx context.Context, studentID int64) ([]*ProjectWithNames, error) {
	return r.queryProjectsWithNames(ctx, projectWithNamesSelect+` WHERE p.student_id = $1 ORDER BY p.id`, studentID)
}

// GetDetail retrieves one project with names joined in
func (r *ProjectRepository) GetDetail(ctx context.Context, id int64) (*ProjectWithNames, error) {
	rows, err := r.db.Query(ctx, projectWithNamesSelect+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrProjectNotFound
	}

	row, err := scanProjectWithNames(rows)
	if err != nil {
		return nil, err
	}

	return row, nil
}

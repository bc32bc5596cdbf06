package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/app/repositories"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
	"github.com/ozanc/mentorhub/internal/pkg/validation"
)

// publicIDAttempts bounds the uniqueness retry when generating a display id.
const publicIDAttempts = 5

// ProjectService defines the interface for project registry operations
type ProjectService interface {
	CreateProject(ctx context.Context, studentID int64, req *dto.CreateProjectRequest) (*models.Project, error)
	UpdateStatus(ctx context.Context, projectID int64, req *dto.UpdateStatusRequest) error
	UpdateDetails(ctx context.Context, studentID, projectID int64, req *dto.UpdateProjectDetailsRequest) error
	DeleteProject(ctx context.Context, projectID int64) error
	ListProjectsAdmin(ctx context.Context) ([]*dto.AdminProjectResponse, error)
	ListProjectsForMentor(ctx context.Context, mentorID int64) ([]*dto.MentorProjectResponse, error)
	ListProjectsForStudent(ctx context.Context, studentID int64) ([]*dto.StudentProjectResponse, error)
	GetProject(ctx context.Context, studentID, projectID int64) (*dto.StudentProjectResponse, error)
}

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	projectRepo projectStore
	studentRepo studentStore
	mentorRepo  mentorStore

	// newPublicID generates a candidate display identifier; replaceable in tests
	newPublicID func() string
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo projectStore, studentRepo studentStore, mentorRepo mentorStore) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		studentRepo: studentRepo,
		mentorRepo:  mentorRepo,
		newPublicID: generatePublicID,
	}
}

// generatePublicID builds a short display identifier like "PRJ-3F9A21BC"
func generatePublicID() string {
	id := uuid.New()
	return "PRJ-" + strings.ToUpper(id.String()[:8])
}

// CreateProject registers a new project submission for a student. The
// project starts Pending with zero progress and no feedback.
func (s *projectServiceImpl) CreateProject(ctx context.Context, studentID int64, req *dto.CreateProjectRequest) (*models.Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	if req.MentorID != nil {
		if _, err := s.mentorRepo.GetByID(ctx, *req.MentorID); err != nil {
			return nil, err
		}
	}

	publicID, err := s.uniquePublicID(ctx)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		PublicID:           publicID,
		Title:              req.Title,
		Description:        &req.Description,
		StudentID:          studentID,
		MentorID:           req.MentorID,
		Status:             models.StatusPending,
		ProgressPercentage: 0,
		MentorFeedback:     nil,
		GithubLink:         req.GithubLink,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// uniquePublicID generates a display id and retries on the unlikely collision
func (s *projectServiceImpl) uniquePublicID(ctx context.Context) (string, error) {
	for i := 0; i < publicIDAttempts; i++ {
		candidate := s.newPublicID()
		exists, err := s.projectRepo.ExistsByPublicID(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique project id after %d attempts", publicIDAttempts)
}

// UpdateStatus applies a mentor review. The status must be one of the known
// review states; feedback and progress are only written when supplied, an
// omitted field keeps its stored value.
func (s *projectServiceImpl) UpdateStatus(ctx context.Context, projectID int64, req *dto.UpdateStatusRequest) error {
	status := models.ProjectStatus(req.Status)
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, req.Status)
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	project.Status = status
	if req.MentorFeedback != nil {
		project.MentorFeedback = req.MentorFeedback
	}
	if req.ProgressPercentage != nil {
		if !validation.ValidProgress(*req.ProgressPercentage) {
			return fmt.Errorf("%w: progress %d out of range", apperrors.ErrValidationFailed, *req.ProgressPercentage)
		}
		project.ProgressPercentage = *req.ProgressPercentage
	}

	return s.projectRepo.UpdateReview(ctx, project)
}

// UpdateDetails applies the student-writable subset of project fields to a
// project owned by the calling student. Omitted fields keep their stored
// value; ownership, status and review fields are untouchable here.
func (s *projectServiceImpl) UpdateDetails(ctx context.Context, studentID, projectID int64, req *dto.UpdateProjectDetailsRequest) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	if project.StudentID != studentID {
		return apperrors.ErrPermissionDenied
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
		}
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.GithubLink != nil {
		project.GithubLink = req.GithubLink
	}

	return s.projectRepo.UpdateDetails(ctx, project)
}

// DeleteProject removes a project unless its status is Approved
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID int64) error {
	return s.projectRepo.Delete(ctx, projectID)
}

// ListProjectsAdmin returns every project joined with student and mentor names
func (s *projectServiceImpl) ListProjectsAdmin(ctx context.Context) ([]*dto.AdminProjectResponse, error) {
	rows, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving projects: %w", err)
	}

	responses := make([]*dto.AdminProjectResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, &dto.AdminProjectResponse{
			ID:          row.ID,
			ProjectID:   row.PublicID,
			Title:       row.Title,
			StudentName: row.StudentName,
			MentorName:  row.MentorName,
			Status:      string(row.Status),
			GithubLink:  row.GithubLink,
			LastUpdated: row.LastUpdated,
		})
	}

	return responses, nil
}

// ListProjectsForMentor returns the mentor dashboard rows with display
// defaulting applied: missing review fields read as their zero review state
// and last_updated falls back to the submission date.
func (s *projectServiceImpl) ListProjectsForMentor(ctx context.Context, mentorID int64) ([]*dto.MentorProjectResponse, error) {
	rows, err := s.projectRepo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving projects: %w", err)
	}

	responses := make([]*dto.MentorProjectResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, mentorProjectRow(row))
	}

	return responses, nil
}

// mentorProjectRow maps a joined project row to the mentor dashboard shape
func mentorProjectRow(row *repositories.ProjectWithNames) *dto.MentorProjectResponse {
	status := string(row.Status)
	if status == "" {
		status = string(models.StatusPending)
	}

	feedback := ""
	if row.MentorFeedback != nil {
		feedback = *row.MentorFeedback
	}

	lastUpdated := row.SubmissionDate
	if row.LastUpdated != nil {
		lastUpdated = *row.LastUpdated
	}

	return &dto.MentorProjectResponse{
		ID:                 row.ID,
		ProjectID:          row.PublicID,
		Title:              row.Title,
		StudentName:        row.StudentName,
		GithubLink:         row.GithubLink,
		Status:             status,
		ProgressPercentage: row.ProgressPercentage,
		MentorFeedback:     feedback,
		LastUpdated:        lastUpdated,
	}
}

// ListProjectsForStudent returns the full project view for the owning student
func (s *projectServiceImpl) ListProjectsForStudent(ctx context.Context, studentID int64) ([]*dto.StudentProjectResponse, error) {
	rows, err := s.projectRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving projects: %w", err)
	}

	responses := make([]*dto.StudentProjectResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, studentProjectRow(row))
	}

	return responses, nil
}

// GetProject returns one project owned by the calling student
func (s *projectServiceImpl) GetProject(ctx context.Context, studentID, projectID int64) (*dto.StudentProjectResponse, error) {
	row, err := s.projectRepo.GetDetail(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if row.StudentID != studentID {
		return nil, apperrors.ErrPermissionDenied
	}

	return studentProjectRow(row), nil
}

// studentProjectRow maps a joined project row to the student view shape
func studentProjectRow(row *repositories.ProjectWithNames) *dto.StudentProjectResponse {
	return &dto.StudentProjectResponse{
		ID:                 row.ID,
		ProjectID:          row.PublicID,
		Title:              row.Title,
		Description:        row.Description,
		StudentName:        row.StudentName,
		MentorName:         row.MentorName,
		Status:             string(row.Status),
		ProgressPercentage: row.ProgressPercentage,
		GithubLink:         row.GithubLink,
		MentorFeedback:     row.MentorFeedback,
		SubmissionDate:     row.SubmissionDate,
		LastUpdated:        row.LastUpdated,
	}
}

package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
)

func seedStudent(t *testing.T, stores *fakeStores, name, prn, email string) *models.Student {
	t.Helper()
	student := &models.Student{Name: name, PRN: prn, Email: email, Password: "hash"}
	require.NoError(t, stores.students.Create(context.Background(), student))
	return student
}

func seedMentor(t *testing.T, stores *fakeStores, name, email string) *models.Mentor {
	t.Helper()
	mentor := &models.Mentor{Name: name, Email: email, Password: "hash"}
	require.NoError(t, stores.mentors.Create(context.Background(), mentor))
	return mentor
}

func newProjectService(stores *fakeStores) ProjectService {
	return NewProjectService(stores.projects, stores.students, stores.mentors)
}

func TestCreateProjectDefaults(t *testing.T) {
	stores := newFakeStores()
	student := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	svc := newProjectService(stores)

	project, err := svc.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title:       "Compiler Playground",
		Description: "A toy compiler",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(project.PublicID, "PRJ-"), "public id %q", project.PublicID)
	assert.Len(t, project.PublicID, 12)
	assert.Equal(t, models.StatusPending, project.Status)
	assert.Equal(t, 0, project.ProgressPercentage)
	assert.Nil(t, project.MentorFeedback)
	assert.NotZero(t, project.ID)
}

func TestCreateProjectUnknownStudent(t *testing.T) {
	stores := newFakeStores()
	svc := newProjectService(stores)

	_, err := svc.CreateProject(context.Background(), 42, &dto.CreateProjectRequest{
		Title:       "Ghost",
		Description: "no owner",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestCreateProjectUnknownMentor(t *testing.T) {
	stores := newFakeStores()
	student := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	svc := newProjectService(stores)

	missing := int64(99)
	_, err := svc.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title:       "Orphan",
		Description: "bad mentor",
		MentorID:    &missing,
	})
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)
}

func TestCreateProjectEmptyTitle(t *testing.T) {
	stores := newFakeStores()
	student := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	svc := newProjectService(stores)

	_, err := svc.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title:       "   ",
		Description: "whitespace title",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateProjectPublicIDCollisionRetries(t *testing.T) {
	stores := newFakeStores()
	student := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")

	svc := newProjectService(stores)
	impl := svc.(*projectServiceImpl)

	first, err := svc.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title:       "First",
		Description: "takes an id",
	})
	require.NoError(t, err)

	// Collide with the existing id once, then yield a fresh one.
	ids := []string{first.PublicID, "PRJ-0000AAAA"}
	impl.newPublicID = func() string {
		id := ids[0]
		if len(ids) > 1 {
			ids = ids[1:]
		}
		return id
	}

	second, err := svc.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title:       "Second",
		Description: "retries",
	})
	require.NoError(t, err)
	assert.Equal(t, "PRJ-0000AAAA", second.PublicID)
	assert.NotEqual(t, first.PublicID, second.PublicID)
}

func TestUpdateStatusRejectsUnknownState(t *testing.T) {
	stores := newFakeStores()
	student := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	svc := newProjectService(stores)

	project, err := svc.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title:       "P",
		Description: "d",
	})
	require.NoError(t, err)

	err = svc.UpdateStatus(context.Background(), project.ID, &dto.UpdateStatusRequest{Status: "InReview"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	stored, err := stores.projects.GetByID(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestUpdateStatusKeepsOmittedReviewFields(t *testing.T) {
	stores := newFakeStores()
	student := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	svc := newProjectService(stores)

	project, err := svc.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title:       "P",
		Description: "d",
	})
	require.NoError(t, err)

	feedback := "Solid start"
	progress := 40
	require.NoError(t, svc.UpdateStatus(context.Background(), project.ID, &dto.UpdateStatusRequest{
		Status:             string(models.StatusPending),
		MentorFeedback:     &feedback,
		ProgressPercentage: &progress,
	}))

	// A later decision without feedback or progress keeps both.
	require.NoError(t, svc.UpdateStatus(context.Background(), project.ID, &dto.UpdateStatusRequest{
		Status: string(models.StatusApproved),
	}))

	stored, err := stores.projects.GetByID(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
	require.NotNil(t, stored.MentorFeedback)
	assert.Equal(t, "Solid start", *stored.MentorFeedback)
	assert.Equal(t, 40, stored.ProgressPercentage)
	assert.NotNil(t, stored.LastUpdated)
}

func TestUpdateDetailsChecksOwnership(t *testing.T) {
	stores := newFakeStores()
	owner := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	other := seedStudent(t, stores, "Ben Cho", "PRN002", "ben@example.com")
	svc := newProjectService(stores)

	project, err := svc.CreateProject(context.Background(), owner.ID, &dto.CreateProjectRequest{
		Title:       "P",
		Description: "d",
	})
	require.NoError(t, err)

	title := "Hijacked"
	err = svc.UpdateDetails(context.Background(), other.ID, project.ID, &dto.UpdateProjectDetailsRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	stored, err := stores.projects.GetByID(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, "P", stored.Title)
}

func TestUpdateDetailsKeepsOmittedFields(t *testing.T) {
	stores := newFakeStores()
	student := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	svc := newProjectService(stores)

	link := "https://github.com/asha/p"
	project, err := svc.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title:       "Original",
		Description: "d",
		GithubLink:  &link,
	})
	require.NoError(t, err)

	newLink := "https://github.com/asha/p2"
	require.NoError(t, svc.UpdateDetails(context.Background(), student.ID, project.ID, &dto.UpdateProjectDetailsRequest{
		GithubLink: &newLink,
	}))

	stored, err := stores.projects.GetByID(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Title)
	require.NotNil(t, stored.GithubLink)
	assert.Equal(t, newLink, *stored.GithubLink)
}

func TestDeleteProjectApprovedGuard(t *testing.T) {
	stores := newFakeStores()
	student := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	svc := newProjectService(stores)

	project, err := svc.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title:       "Keeper",
		Description: "d",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), project.ID, &dto.UpdateStatusRequest{
		Status: string(models.StatusApproved),
	}))

	err = svc.DeleteProject(context.Background(), project.ID)
	assert.ErrorIs(t, err, apperrors.ErrProjectApproved)

	_, err = stores.projects.GetByID(context.Background(), project.ID)
	assert.NoError(t, err, "approved project must survive the delete attempt")
}

func TestListProjectsForMentorDisplayDefaults(t *testing.T) {
	stores := newFakeStores()
	student := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	mentor := seedMentor(t, stores, "Dr. Iyer", "iyer@example.com")
	svc := newProjectService(stores)

	project, err := svc.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title:       "Fresh",
		Description: "d",
		MentorID:    &mentor.ID,
	})
	require.NoError(t, err)

	rows, err := svc.ListProjectsForMentor(context.Background(), mentor.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, project.PublicID, row.ProjectID)
	assert.Equal(t, "Asha Rao", row.StudentName)
	assert.Equal(t, string(models.StatusPending), row.Status)
	assert.Equal(t, 0, row.ProgressPercentage)
	assert.Equal(t, "", row.MentorFeedback)
	assert.Equal(t, project.SubmissionDate.Unix(), row.LastUpdated.Unix(),
		"last updated falls back to the submission date before any review")
}

func TestGetProjectChecksOwnership(t *testing.T) {
	stores := newFakeStores()
	owner := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	other := seedStudent(t, stores, "Ben Cho", "PRN002", "ben@example.com")
	svc := newProjectService(stores)

	project, err := svc.CreateProject(context.Background(), owner.ID, &dto.CreateProjectRequest{
		Title:       "Private",
		Description: "d",
	})
	require.NoError(t, err)

	_, err = svc.GetProject(context.Background(), other.ID, project.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	view, err := svc.GetProject(context.Background(), owner.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private", view.Title)
	assert.Equal(t, "Asha Rao", view.StudentName)
}

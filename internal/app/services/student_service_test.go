package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
	"github.com/ozanc/mentorhub/internal/pkg/auth"
)

func newStudentService(stores *fakeStores) StudentService {
	return NewStudentService(stores.students, stores.mentors)
}

func TestCreateStudentHashesPassword(t *testing.T) {
	stores := newFakeStores()
	svc := newStudentService(stores)

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:     "Asha Rao",
		PRN:      "PRN001",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", student.Password)
	assert.True(t, auth.CheckPassword(student.Password, "secret123"))
}

func TestCreateStudentDuplicatePRN(t *testing.T) {
	stores := newFakeStores()
	svc := newStudentService(stores)

	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name: "Asha Rao", PRN: "PRN001", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name: "Ben Cho", PRN: "PRN001", Email: "ben@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrPRNAlreadyExists)
}

func TestCreateStudentUnknownMentor(t *testing.T) {
	stores := newFakeStores()
	svc := newStudentService(stores)

	missing := int64(7)
	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name: "Asha Rao", PRN: "PRN001", Email: "asha@example.com", Password: "secret123",
		MentorID: &missing,
	})
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)
}

func TestUpdateStudentKeepsOmittedFields(t *testing.T) {
	stores := newFakeStores()
	svc := newStudentService(stores)

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name: "Asha Rao", PRN: "PRN001", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	newEmail := "asha.rao@example.com"
	require.NoError(t, svc.UpdateStudent(context.Background(), student.ID, &dto.UpdateStudentRequest{
		Email: &newEmail,
	}))

	stored, err := stores.students.GetByID(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", stored.Name)
	assert.Equal(t, "PRN001", stored.PRN)
	assert.Equal(t, newEmail, stored.Email)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"), "password must survive a partial update")
}

func TestDeleteStudentBlockedByApprovedProject(t *testing.T) {
	stores := newFakeStores()
	svc := newStudentService(stores)
	projects := newProjectService(stores)

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name: "Asha Rao", PRN: "PRN001", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	project, err := projects.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title: "Keeper", Description: "d",
	})
	require.NoError(t, err)
	require.NoError(t, projects.UpdateStatus(context.Background(), project.ID, &dto.UpdateStatusRequest{
		Status: string(models.StatusApproved),
	}))

	err = svc.DeleteStudent(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentHasApprovedProjects)

	_, err = stores.students.GetByID(context.Background(), student.ID)
	assert.NoError(t, err, "student must survive the blocked delete")
	_, err = stores.projects.GetByID(context.Background(), project.ID)
	assert.NoError(t, err, "approved project must survive the blocked delete")
}

func TestDeleteStudentRemovesPendingProjects(t *testing.T) {
	stores := newFakeStores()
	svc := newStudentService(stores)
	projects := newProjectService(stores)

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name: "Asha Rao", PRN: "PRN001", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	pending, err := projects.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title: "Pending", Description: "d",
	})
	require.NoError(t, err)

	rejected, err := projects.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title: "Rejected", Description: "d",
	})
	require.NoError(t, err)
	require.NoError(t, projects.UpdateStatus(context.Background(), rejected.ID, &dto.UpdateStatusRequest{
		Status: string(models.StatusRejected),
	}))

	require.NoError(t, svc.DeleteStudent(context.Background(), student.ID))

	_, err = stores.students.GetByID(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	_, err = stores.projects.GetByID(context.Background(), pending.ID)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
	_, err = stores.projects.GetByID(context.Background(), rejected.ID)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestAssignMentorUnknownMentor(t *testing.T) {
	stores := newFakeStores()
	svc := newStudentService(stores)

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name: "Asha Rao", PRN: "PRN001", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	err = svc.AssignMentor(context.Background(), student.ID, 99)
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)

	stored, err := stores.students.GetByID(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.MentorID)
}

func TestAssignMentorLinksStudent(t *testing.T) {
	stores := newFakeStores()
	svc := newStudentService(stores)
	mentor := seedMentor(t, stores, "Dr. Iyer", "iyer@example.com")

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name: "Asha Rao", PRN: "PRN001", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AssignMentor(context.Background(), student.ID, mentor.ID))

	listed, err := svc.ListStudentsForMentor(context.Background(), mentor.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, student.ID, listed[0].ID)
}

func TestResetStudentPassword(t *testing.T) {
	stores := newFakeStores()
	svc := newStudentService(stores)

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name: "Asha Rao", PRN: "PRN001", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(context.Background(), student.ID, "newsecret"))

	stored, err := stores.students.GetByID(context.Background(), student.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.Password, "newsecret"))
	assert.False(t, auth.CheckPassword(stored.Password, "secret123"))
}

func TestListStudentsIncludesMentorName(t *testing.T) {
	stores := newFakeStores()
	svc := newStudentService(stores)
	mentor := seedMentor(t, stores, "Dr. Iyer", "iyer@example.com")

	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name: "Asha Rao", PRN: "PRN001", Email: "asha@example.com", Password: "secret123",
		MentorID: &mentor.ID,
	})
	require.NoError(t, err)

	listed, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].MentorName)
	assert.Equal(t, "Dr. Iyer", *listed[0].MentorName)
}

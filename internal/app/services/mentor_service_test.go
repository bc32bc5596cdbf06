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

func newMentorService(stores *fakeStores) MentorService {
	return NewMentorService(stores.mentors)
}

func TestCreateMentorDuplicateEmail(t *testing.T) {
	stores := newFakeStores()
	svc := newMentorService(stores)

	_, err := svc.CreateMentor(context.Background(), &dto.CreateMentorRequest{
		Name: "Dr. Iyer", Email: "iyer@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.CreateMentor(context.Background(), &dto.CreateMentorRequest{
		Name: "Dr. Iyer II", Email: "iyer@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUpdateMentorKeepsOmittedFields(t *testing.T) {
	stores := newFakeStores()
	svc := newMentorService(stores)

	dept := "CS"
	mentor, err := svc.CreateMentor(context.Background(), &dto.CreateMentorRequest{
		Name: "Dr. Iyer", Email: "iyer@example.com", Password: "secret123", Department: &dept,
	})
	require.NoError(t, err)

	newName := "Dr. R. Iyer"
	require.NoError(t, svc.UpdateMentor(context.Background(), mentor.ID, &dto.UpdateMentorRequest{
		Name: &newName,
	}))

	stored, err := stores.mentors.GetByID(context.Background(), mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, newName, stored.Name)
	assert.Equal(t, "iyer@example.com", stored.Email)
	require.NotNil(t, stored.Department)
	assert.Equal(t, "CS", *stored.Department)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))
}

func TestDeleteMentorCascade(t *testing.T) {
	stores := newFakeStores()
	svc := newMentorService(stores)
	projects := newProjectService(stores)

	mentor := seedMentor(t, stores, "Dr. Iyer", "iyer@example.com")
	student := seedStudent(t, stores, "Asha Rao", "PRN001", "asha@example.com")
	require.NoError(t, stores.students.SetMentor(context.Background(), student.ID, mentor.ID))

	assigned, err := projects.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title: "Assigned", Description: "d", MentorID: &mentor.ID,
	})
	require.NoError(t, err)

	// Even an approved project goes when its mentor is removed.
	require.NoError(t, projects.UpdateStatus(context.Background(), assigned.ID, &dto.UpdateStatusRequest{
		Status: string(models.StatusApproved),
	}))

	unassigned, err := projects.CreateProject(context.Background(), student.ID, &dto.CreateProjectRequest{
		Title: "Unassigned", Description: "d",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMentor(context.Background(), mentor.ID))

	_, err = stores.mentors.GetByID(context.Background(), mentor.ID)
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)

	_, err = stores.projects.GetByID(context.Background(), assigned.ID)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)

	_, err = stores.projects.GetByID(context.Background(), unassigned.ID)
	assert.NoError(t, err, "projects without this mentor must survive")

	stored, err := stores.students.GetByID(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.MentorID, "students must be unassigned, not deleted")
}

func TestDeleteMentorUnknown(t *testing.T) {
	stores := newFakeStores()
	svc := newMentorService(stores)

	err := svc.DeleteMentor(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrMentorNotFound)
}

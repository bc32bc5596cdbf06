package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
	"github.com/ozanc/mentorhub/internal/pkg/auth"
	"github.com/ozanc/mentorhub/internal/pkg/validation"
)

// StudentService defines the interface for student directory operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*dto.StudentResponse, error)
	ListStudentsForMentor(ctx context.Context, mentorID int64) ([]*dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, id int64) error
	ResetPassword(ctx context.Context, id int64, password string) error
	AssignMentor(ctx context.Context, studentID, mentorID int64) error
	UpdateGithubLink(ctx context.Context, id int64, githubLink string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo studentStore
	mentorRepo  mentorStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentStore, mentorRepo mentorStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		mentorRepo:  mentorRepo,
	}
}

// CreateStudent registers a new student. The PRN and email must be unique;
// the credential is hashed before it is stored.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.ValidPRN(req.PRN) {
		return nil, fmt.Errorf("%w: malformed prn %q", apperrors.ErrValidationFailed, req.PRN)
	}
	if !validation.ValidPassword(req.Password) {
		return nil, fmt.Errorf("%w: password too short", apperrors.ErrValidationFailed)
	}

	if req.MentorID != nil {
		if _, err := s.mentorRepo.GetByID(ctx, *req.MentorID); err != nil {
			if errors.Is(err, apperrors.ErrMentorNotFound) {
				return nil, apperrors.ErrMentorNotFound
			}
			return nil, fmt.Errorf("error checking mentor: %w", err)
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Name:       req.Name,
		PRN:        req.PRN,
		Email:      req.Email,
		Password:   hash,
		MentorID:   req.MentorID,
		GithubLink: req.GithubLink,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// ListStudents returns the admin directory view: every student with the
// assigned mentor's name joined in.
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*dto.StudentResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	responses := make([]*dto.StudentResponse, 0, len(students))
	for _, student := range students {
		resp := &dto.StudentResponse{
			ID:         student.ID,
			Name:       student.Name,
			PRN:        student.PRN,
			Email:      student.Email,
			MentorID:   student.MentorID,
			GithubLink: student.GithubLink,
		}
		if student.Mentor != nil {
			resp.MentorName = &student.Mentor.Name
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// ListStudentsForMentor returns the students assigned to a mentor
func (s *studentServiceImpl) ListStudentsForMentor(ctx context.Context, mentorID int64) ([]*dto.StudentResponse, error) {
	students, err := s.studentRepo.GetByMentorID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	responses := make([]*dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, &dto.StudentResponse{
			ID:         student.ID,
			Name:       student.Name,
			PRN:        student.PRN,
			Email:      student.Email,
			MentorID:   student.MentorID,
			GithubLink: student.GithubLink,
		})
	}

	return responses, nil
}

// UpdateStudent applies a partial update. Fields omitted from the request
// keep their stored value; a supplied password is hashed before storage.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.PRN != nil {
		if !validation.ValidPRN(*req.PRN) {
			return fmt.Errorf("%w: malformed prn %q", apperrors.ErrValidationFailed, *req.PRN)
		}
		student.PRN = *req.PRN
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		student.Password = hash
	}
	if req.MentorID != nil {
		if _, err := s.mentorRepo.GetByID(ctx, *req.MentorID); err != nil {
			return err
		}
		student.MentorID = req.MentorID
	}
	if req.GithubLink != nil {
		student.GithubLink = req.GithubLink
	}

	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent removes a student and their non-Approved projects in one
// transaction. A student with any Approved project cannot be deleted.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.DeleteCascade(ctx, id)
}

// ResetPassword overwrites the stored credential without confirmation
func (s *studentServiceImpl) ResetPassword(ctx context.Context, id int64, password string) error {
	if !validation.ValidPassword(password) {
		return fmt.Errorf("%w: password too short", apperrors.ErrValidationFailed)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.studentRepo.UpdatePassword(ctx, id, hash)
}

// AssignMentor links a student to a mentor. Both must exist.
func (s *studentServiceImpl) AssignMentor(ctx context.Context, studentID, mentorID int64) error {
	if _, err := s.mentorRepo.GetByID(ctx, mentorID); err != nil {
		return err
	}

	return s.studentRepo.SetMentor(ctx, studentID, mentorID)
}

// UpdateGithubLink sets the student's external repository link
func (s *studentServiceImpl) UpdateGithubLink(ctx context.Context, id int64, githubLink string) error {
	return s.studentRepo.UpdateGithubLink(ctx, id, githubLink)
}

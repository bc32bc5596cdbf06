package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
	"github.com/ozanc/mentorhub/internal/pkg/auth"
	"github.com/ozanc/mentorhub/internal/pkg/validation"
)

// MentorService defines the interface for mentor directory operations
type MentorService interface {
	CreateMentor(ctx context.Context, req *dto.CreateMentorRequest) (*models.Mentor, error)
	ListMentors(ctx context.Context) ([]*dto.MentorResponse, error)
	UpdateMentor(ctx context.Context, id int64, req *dto.UpdateMentorRequest) error
	DeleteMentor(ctx context.Context, id int64) error
	ResetPassword(ctx context.Context, id int64, password string) error
}

// mentorServiceImpl implements the MentorService interface
type mentorServiceImpl struct {
	mentorRepo mentorStore
}

// NewMentorService creates a new mentor service instance
func NewMentorService(mentorRepo mentorStore) MentorService {
	return &mentorServiceImpl{
		mentorRepo: mentorRepo,
	}
}

// CreateMentor registers a new mentor. The email must be unique;
// the credential is hashed before it is stored.
func (s *mentorServiceImpl) CreateMentor(ctx context.Context, req *dto.CreateMentorRequest) (*models.Mentor, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.ValidPassword(req.Password) {
		return nil, fmt.Errorf("%w: password too short", apperrors.ErrValidationFailed)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	mentor := &models.Mentor{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hash,
		Department: req.Department,
	}

	if err := s.mentorRepo.Create(ctx, mentor); err != nil {
		return nil, err
	}

	return mentor, nil
}

// ListMentors returns every mentor record
func (s *mentorServiceImpl) ListMentors(ctx context.Context) ([]*dto.MentorResponse, error) {
	mentors, err := s.mentorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving mentors: %w", err)
	}

	responses := make([]*dto.MentorResponse, 0, len(mentors))
	for _, mentor := range mentors {
		responses = append(responses, &dto.MentorResponse{
			ID:         mentor.ID,
			Name:       mentor.Name,
			Email:      mentor.Email,
			Department: mentor.Department,
		})
	}

	return responses, nil
}

// UpdateMentor applies a partial update. Fields omitted from the request
// keep their stored value; a supplied password is hashed before storage.
func (s *mentorServiceImpl) UpdateMentor(ctx context.Context, id int64, req *dto.UpdateMentorRequest) error {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		mentor.Name = *req.Name
	}
	if req.Email != nil {
		mentor.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		mentor.Password = hash
	}
	if req.Department != nil {
		mentor.Department = req.Department
	}

	return s.mentorRepo.Update(ctx, mentor)
}

// DeleteMentor removes a mentor, every project assigned to them and every
// student's reference to them, in one transaction. Unlike student deletion
// there is no Approved-project guard on this path; that asymmetry is the
// established policy.
func (s *mentorServiceImpl) DeleteMentor(ctx context.Context, id int64) error {
	return s.mentorRepo.DeleteCascade(ctx, id)
}

// ResetPassword overwrites the stored credential without confirmation
func (s *mentorServiceImpl) ResetPassword(ctx context.Context, id int64, password string) error {
	if !validation.ValidPassword(password) {
		return fmt.Errorf("%w: password too short", apperrors.ErrValidationFailed)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.mentorRepo.UpdatePassword(ctx, id, hash)
}

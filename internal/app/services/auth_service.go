package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
	"github.com/ozanc/mentorhub/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	AdminLogin(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	MentorLogin(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	StudentLogin(ctx context.Context, email, password string) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	adminRepo   adminStore
	mentorRepo  mentorStore
	studentRepo studentStore
	jwtService  *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminRepo adminStore, mentorRepo mentorStore, studentRepo studentStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		adminRepo:   adminRepo,
		mentorRepo:  mentorRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
	}
}

// AdminLogin authenticates an administrator by username and password
func (s *authServiceImpl) AdminLogin(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	if !auth.CheckPassword(admin.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(admin.ID, admin.Username, admin.Username, models.RoleAdmin)
}

// MentorLogin authenticates a mentor by email and password
func (s *authServiceImpl) MentorLogin(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	mentor, err := s.mentorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrMentorNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}

	if !auth.CheckPassword(mentor.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(mentor.ID, mentor.Name, mentor.Email, models.RoleMentor)
}

// StudentLogin authenticates a student by email and password
func (s *authServiceImpl) StudentLogin(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if !auth.CheckPassword(student.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(student.ID, student.Name, student.Email, models.RoleStudent)
}

func (s *authServiceImpl) issueToken(id int64, name, identity, role string) (*dto.LoginResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(id, name, identity, role)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		ID:        id,
		Name:      name,
		Role:      role,
	}, nil
}

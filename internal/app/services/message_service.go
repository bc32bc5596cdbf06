package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
)

// MessageService defines the interface for the project message log
type MessageService interface {
	SendMessage(ctx context.Context, senderType string, senderID int64, req *dto.SendMessageRequest) (*models.Message, error)
	GetProjectMessages(ctx context.Context, projectID int64) ([]*models.Message, error)
}

// messageServiceImpl implements the MessageService interface
type messageServiceImpl struct {
	messageRepo messageStore
	projectRepo projectStore
}

// NewMessageService creates a new message service instance
func NewMessageService(messageRepo messageStore, projectRepo projectStore) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		projectRepo: projectRepo,
	}
}

// SendMessage appends a message to a project's log. The project must exist
// and the sender type must be one of the known roles; messages are never
// edited or removed afterwards.
func (s *messageServiceImpl) SendMessage(ctx context.Context, senderType string, senderID int64, req *dto.SendMessageRequest) (*models.Message, error) {
	sender := models.SenderType(senderType)
	if !sender.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidSenderType, senderType)
	}

	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: message text cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ProjectID:  req.ProjectID,
		SenderType: sender,
		SenderID:   senderID,
		Text:       req.Text,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// GetProjectMessages returns a project's messages in chronological order
func (s *messageServiceImpl) GetProjectMessages(ctx context.Context, projectID int64) ([]*models.Message, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	return s.messageRepo.GetByProjectID(ctx, projectID)
}

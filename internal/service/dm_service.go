package service

import (
	"context"
	"strings"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// DirectMessageService implements private point-to-point messaging.
type DirectMessageService struct {
	dmRepo   repository.DirectMessageRepository
	userRepo repository.UserRepository
}

// NewDirectMessageService returns a new DirectMessageService.
func NewDirectMessageService(
	dmRepo repository.DirectMessageRepository,
	userRepo repository.UserRepository,
) *DirectMessageService {
	return &DirectMessageService{dmRepo: dmRepo, userRepo: userRepo}
}

// Send creates a direct message from sender to recipient. Messaging yourself
// is rejected; a missing recipient is NOT_FOUND.
func (s *DirectMessageService) Send(ctx context.Context, senderID, recipientID uint, text string) (*models.DirectMessage, error) {
	if senderID == recipientID {
		return nil, models.NewSelfReferenceError("You cannot send a message to yourself")
	}
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Message text is required")
	}
	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	dm := &models.DirectMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        text,
	}
	if err := s.dmRepo.Create(ctx, dm); err != nil {
		return nil, err
	}
	return dm, nil
}

// Inbox lists messages received by the user, newest first.
func (s *DirectMessageService) Inbox(ctx context.Context, userID uint) ([]models.DirectMessage, error) {
	return s.dmRepo.Inbox(ctx, userID)
}

// Sent lists messages sent by the user, newest first.
func (s *DirectMessageService) Sent(ctx context.Context, userID uint) ([]models.DirectMessage, error) {
	return s.dmRepo.Sent(ctx, userID)
}

package service

import (
	"context"
	"strings"

	"yatube/internal/models"
	"yatube/internal/repository"
)

const (
	maxRoomNameLen   = 64
	maxChatBodyLen   = 2000
	defaultChatLimit = 50
	maxChatLimit     = 200
)

// ChatService persists and reads chat-room messages. Rooms are ad-hoc names
// with no membership; fan-out to live connections happens in the hub.
type ChatService struct {
	messageRepo repository.MessageRepository
}

type PostMessageInput struct {
	Room     string
	Username string
	Body     string
}

func NewChatService(messageRepo repository.MessageRepository) *ChatService {
	return &ChatService{messageRepo: messageRepo}
}

func (s *ChatService) PostMessage(ctx context.Context, in PostMessageInput) (*models.Message, error) {
	room := strings.TrimSpace(in.Room)
	if room == "" || len(room) > maxRoomNameLen {
		return nil, models.NewValidationError("A room name is required (max 64 characters)")
	}
	if strings.TrimSpace(in.Username) == "" {
		return nil, models.NewValidationError("Username is required")
	}
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, models.NewValidationError("Message body is required")
	}
	if len(body) > maxChatBodyLen {
		return nil, models.NewValidationError("Message too long (max 2000 characters)")
	}

	message := &models.Message{
		Room:     room,
		Username: in.Username,
		Body:     body,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// History returns up to limit recent messages of a room, oldest first.
func (s *ChatService) History(ctx context.Context, room string, limit int) ([]*models.Message, error) {
	if limit <= 0 {
		limit = defaultChatLimit
	}
	if limit > maxChatLimit {
		limit = maxChatLimit
	}
	return s.messageRepo.ListByRoom(ctx, room, limit)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MEDWEDU/Lettera/domain"
)

// ChatServiceImpl implements domain.ChatService for one-to-one chats.
type ChatServiceImpl struct {
	chatRepo    domain.ChatRepository
	messageRepo domain.MessageRepository
	userRepo    domain.UserRepository
	mediaRepo   domain.MediaRepository
}

// NewChatService creates a new chat service.
func NewChatService(
	chatRepo domain.ChatRepository,
	messageRepo domain.MessageRepository,
	userRepo domain.UserRepository,
	mediaRepo domain.MediaRepository,
) domain.ChatService {
	return &ChatServiceImpl{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		mediaRepo:   mediaRepo,
	}
}

// OpenChat implements domain.ChatService: find-or-create for the pair.
func (s *ChatServiceImpl) OpenChat(ctx context.Context, userID, peerID string) (*domain.Chat, error) {
	if peerID == "" || peerID == userID {
		return nil, domain.ErrValidation.WithDetails("peer must be another user")
	}

	if _, err := s.userRepo.FindByID(ctx, peerID); err != nil {
		return nil, err
	}

	chat, err := s.chatRepo.FindByParticipants(ctx, userID, peerID)
	if err == nil {
		return chat, nil
	}
	if !errors.Is(err, domain.ErrChatNotFound) {
		return nil, fmt.Errorf("failed to look up chat: %w", err)
	}

	chat = &domain.Chat{Participants: [2]string{userID, peerID}}
	if err := s.chatRepo.Create(ctx, chat); err != nil {
		// A concurrent open for the same pair may have won the unique index.
		if existing, ferr := s.chatRepo.FindByParticipants(ctx, userID, peerID); ferr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}
	return chat, nil
}

// ListChats implements domain.ChatService
func (s *ChatServiceImpl) ListChats(ctx context.Context, userID string) ([]*domain.Chat, error) {
	return s.chatRepo.ListByUser(ctx, userID)
}

// SendMessage implements domain.ChatService. Only participants may post;
// the chat's last-activity marker moves with each message.
func (s *ChatServiceImpl) SendMessage(ctx context.Context, userID, chatID, text, mediaID string) (*domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" && mediaID == "" {
		return nil, domain.ErrValidation.WithDetails("message must contain text or media")
	}

	chat, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(userID) {
		return nil, domain.ErrForbidden
	}

	if mediaID != "" {
		media, err := s.mediaRepo.FindByID(ctx, mediaID)
		if err != nil {
			return nil, err
		}
		if media.OwnerID != userID {
			return nil, domain.ErrForbidden
		}
	}

	msg := &domain.Message{
		ChatID:   chatID,
		SenderID: userID,
		Text:     text,
		MediaID:  mediaID,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	preview := text
	if preview == "" {
		preview = "[media]"
	}
	if err := s.chatRepo.Touch(ctx, chatID, preview, msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to update chat activity: %w", err)
	}

	return msg, nil
}

// ListMessages implements domain.ChatService, participant-gated.
func (s *ChatServiceImpl) ListMessages(ctx context.Context, userID, chatID string, limit int, before time.Time) ([]*domain.Message, error) {
	chat, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(userID) {
		return nil, domain.ErrForbidden
	}

	return s.messageRepo.ListByChat(ctx, chatID, limit, before)
}

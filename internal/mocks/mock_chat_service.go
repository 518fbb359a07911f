package mocks

import (
	"context"
	"time"

	"github.com/MEDWEDU/Lettera/domain"
)

// MockChatService implements domain.ChatService for testing
type MockChatService struct {
	OpenChatFunc     func(ctx context.Context, userID, peerID string) (*domain.Chat, error)
	ListChatsFunc    func(ctx context.Context, userID string) ([]*domain.Chat, error)
	SendMessageFunc  func(ctx context.Context, userID, chatID, text, mediaID string) (*domain.Message, error)
	ListMessagesFunc func(ctx context.Context, userID, chatID string, limit int, before time.Time) ([]*domain.Message, error)
}

// NewMockChatService creates a new MockChatService with default behaviors
func NewMockChatService() *MockChatService {
	return &MockChatService{}
}

// OpenChat finds or creates the chat with a peer
func (m *MockChatService) OpenChat(ctx context.Context, userID, peerID string) (*domain.Chat, error) {
	if m.OpenChatFunc != nil {
		return m.OpenChatFunc(ctx, userID, peerID)
	}
	return &domain.Chat{ID: "chat1", Participants: [2]string{userID, peerID}}, nil
}

// ListChats lists the caller's chats
func (m *MockChatService) ListChats(ctx context.Context, userID string) ([]*domain.Chat, error) {
	if m.ListChatsFunc != nil {
		return m.ListChatsFunc(ctx, userID)
	}
	return nil, nil
}

// SendMessage posts a message to a chat
func (m *MockChatService) SendMessage(ctx context.Context, userID, chatID, text, mediaID string) (*domain.Message, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, userID, chatID, text, mediaID)
	}
	return &domain.Message{ID: "m1", ChatID: chatID, SenderID: userID, Text: text, MediaID: mediaID}, nil
}

// ListMessages reads chat history
func (m *MockChatService) ListMessages(ctx context.Context, userID, chatID string, limit int, before time.Time) ([]*domain.Message, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, userID, chatID, limit, before)
	}
	return nil, nil
}

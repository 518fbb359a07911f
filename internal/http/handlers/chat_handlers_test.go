package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MEDWEDU/Lettera/domain"
	"github.com/MEDWEDU/Lettera/internal/mocks"
)

// installTestUser stands in for the auth middleware.
func installTestUser(user *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

func newChatRouter(chatSvc domain.ChatService, user *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandlers(chatSvc)
	grp := r.Group("/", installTestUser(user))
	grp.POST("/chats", h.OpenChat)
	grp.GET("/chats", h.ListChats)
	grp.POST("/chats/:id/messages", h.SendMessage)
	grp.GET("/chats/:id/messages", h.ListMessages)
	return r
}

func TestChatHandlers_OpenChat(t *testing.T) {
	caller := &domain.User{ID: "u1", Email: "test@example.com", Verified: true}

	t.Run("returns chat for the pair", func(t *testing.T) {
		chatSvc := mocks.NewMockChatService()
		router := newChatRouter(chatSvc, caller)

		w := performJSONRequest(t, router, http.MethodPost, "/chats", OpenChatRequest{PeerID: "u2"})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		chat, ok := body["chat"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected chat payload, got %v", body)
		}
		if chat["id"] != "chat1" {
			t.Errorf("unexpected chat %v", chat)
		}
	})

	t.Run("missing peer rejected by binding", func(t *testing.T) {
		router := newChatRouter(mocks.NewMockChatService(), caller)

		w := performJSONRequest(t, router, http.MethodPost, "/chats", map[string]string{})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown peer maps to 404", func(t *testing.T) {
		chatSvc := mocks.NewMockChatService()
		chatSvc.OpenChatFunc = func(ctx context.Context, userID, peerID string) (*domain.Chat, error) {
			return nil, domain.ErrUserNotFound
		}
		router := newChatRouter(chatSvc, caller)

		w := performJSONRequest(t, router, http.MethodPost, "/chats", OpenChatRequest{PeerID: "ghost"})

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestChatHandlers_SendMessage(t *testing.T) {
	caller := &domain.User{ID: "u1", Email: "test@example.com", Verified: true}

	t.Run("created message returns 201", func(t *testing.T) {
		chatSvc := mocks.NewMockChatService()
		chatSvc.SendMessageFunc = func(ctx context.Context, userID, chatID, text, mediaID string) (*domain.Message, error) {
			return &domain.Message{ID: "m1", ChatID: chatID, SenderID: userID, Text: text, CreatedAt: time.Now()}, nil
		}
		router := newChatRouter(chatSvc, caller)

		w := performJSONRequest(t, router, http.MethodPost, "/chats/chat1/messages", SendMessageRequest{Text: "hello"})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		msg, ok := body["message"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected message payload, got %v", body)
		}
		if msg["text"] != "hello" || msg["senderId"] != "u1" {
			t.Errorf("unexpected message %v", msg)
		}
	})

	t.Run("non-participant maps to 403", func(t *testing.T) {
		chatSvc := mocks.NewMockChatService()
		chatSvc.SendMessageFunc = func(ctx context.Context, userID, chatID, text, mediaID string) (*domain.Message, error) {
			return nil, domain.ErrForbidden
		}
		router := newChatRouter(chatSvc, caller)

		w := performJSONRequest(t, router, http.MethodPost, "/chats/chat1/messages", SendMessageRequest{Text: "hello"})

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestChatHandlers_ListMessages(t *testing.T) {
	caller := &domain.User{ID: "u1", Email: "test@example.com", Verified: true}

	t.Run("before filter parsed as RFC 3339", func(t *testing.T) {
		var gotBefore time.Time
		var gotLimit int
		chatSvc := mocks.NewMockChatService()
		chatSvc.ListMessagesFunc = func(ctx context.Context, userID, chatID string, limit int, before time.Time) ([]*domain.Message, error) {
			gotBefore = before
			gotLimit = limit
			return nil, nil
		}
		router := newChatRouter(chatSvc, caller)

		w := performJSONRequest(t, router, http.MethodGet, "/chats/chat1/messages?limit=10&before=2026-08-01T00:00:00Z", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if gotLimit != 10 {
			t.Errorf("expected limit 10, got %d", gotLimit)
		}
		want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		if !gotBefore.Equal(want) {
			t.Errorf("expected before %v, got %v", want, gotBefore)
		}
	})

	t.Run("invalid before rejected", func(t *testing.T) {
		router := newChatRouter(mocks.NewMockChatService(), caller)

		w := performJSONRequest(t, router, http.MethodGet, "/chats/chat1/messages?before=yesterday", nil)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

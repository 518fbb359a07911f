package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MEDWEDU/Lettera/domain"
)

// ChatHandlers handles chat and message HTTP requests.
type ChatHandlers struct {
	chatSvc domain.ChatService
}

// NewChatHandlers creates new chat handlers.
func NewChatHandlers(chatSvc domain.ChatService) *ChatHandlers {
	return &ChatHandlers{chatSvc: chatSvc}
}

// OpenChatRequest names the other participant.
type OpenChatRequest struct {
	PeerID string `json:"peerId" binding:"required"`
}

// SendMessageRequest carries message content. Either text or mediaId must be
// present.
type SendMessageRequest struct {
	Text    string `json:"text"`
	MediaID string `json:"mediaId"`
}

func chatPayload(chat *domain.Chat) gin.H {
	return gin.H{
		"id":            chat.ID,
		"participants":  chat.Participants,
		"lastMessage":   chat.LastMessage,
		"lastMessageAt": chat.LastMessageAt,
		"createdAt":     chat.CreatedAt,
	}
}

func messagePayload(msg *domain.Message) gin.H {
	payload := gin.H{
		"id":        msg.ID,
		"chatId":    msg.ChatID,
		"senderId":  msg.SenderID,
		"text":      msg.Text,
		"createdAt": msg.CreatedAt,
	}
	if msg.MediaID != "" {
		payload["mediaId"] = msg.MediaID
	}
	return payload
}

// OpenChat handles POST /chats
func (h *ChatHandlers) OpenChat(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	var req OpenChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	chat, err := h.chatSvc.OpenChat(c.Request.Context(), user.ID, req.PeerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"chat": chatPayload(chat)})
}

// ListChats handles GET /chats
func (h *ChatHandlers) ListChats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	chats, err := h.chatSvc.ListChats(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := make([]gin.H, 0, len(chats))
	for _, chat := range chats {
		payload = append(payload, chatPayload(chat))
	}
	respondOK(c, gin.H{"chats": payload})
}

// SendMessage handles POST /chats/:id/messages
func (h *ChatHandlers) SendMessage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	msg, err := h.chatSvc.SendMessage(c.Request.Context(), user.ID, c.Param("id"), req.Text, req.MediaID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": messagePayload(msg)})
}

// ListMessages handles GET /chats/:id/messages?limit=&before=
func (h *ChatHandlers) ListMessages(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	var before time.Time
	if raw := c.Query("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(c, domain.ErrValidation.WithDetails("before must be an RFC 3339 timestamp"))
			return
		}
		before = parsed
	}

	messages, err := h.chatSvc.ListMessages(c.Request.Context(), user.ID, c.Param("id"), limit, before)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := make([]gin.H, 0, len(messages))
	for _, msg := range messages {
		payload = append(payload, messagePayload(msg))
	}
	respondOK(c, gin.H{"messages": payload})
}

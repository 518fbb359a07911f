package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MEDWEDU/Lettera/domain"
)

// PresenceHandlers handles online-presence requests.
type PresenceHandlers struct {
	presenceSvc domain.PresenceService
}

// NewPresenceHandlers creates new presence handlers.
func NewPresenceHandlers(presenceSvc domain.PresenceService) *PresenceHandlers {
	return &PresenceHandlers{presenceSvc: presenceSvc}
}

// PingRequest reports the caller's presence status.
type PingRequest struct {
	Status string `json:"status" binding:"required,oneof=online away"`
}

// Ping handles POST /presence/ping
func (h *PresenceHandlers) Ping(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	var req PingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	if err := h.presenceSvc.Ping(c.Request.Context(), user.ID, domain.PresenceStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"success": true})
}

// Get handles GET /presence/:id
func (h *PresenceHandlers) Get(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	status, err := h.presenceSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"status": status})
}

// GetMany handles GET /presence?ids=a,b,c
func (h *PresenceHandlers) GetMany(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	var ids []string
	for _, id := range strings.Split(c.Query("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	statuses, err := h.presenceSvc.GetMany(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"statuses": statuses})
}

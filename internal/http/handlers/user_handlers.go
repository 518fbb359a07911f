package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MEDWEDU/Lettera/domain"
)

// UserHandlers handles profile and user search requests.
type UserHandlers struct {
	authSvc   domain.AuthService
	searchSvc domain.SearchService
}

// NewUserHandlers creates new user handlers.
func NewUserHandlers(authSvc domain.AuthService, searchSvc domain.SearchService) *UserHandlers {
	return &UserHandlers{authSvc: authSvc, searchSvc: searchSvc}
}

// UpdateProfileRequest carries the owner-mutable profile fields.
type UpdateProfileRequest struct {
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Position  *string  `json:"position"`
	Company   *string  `json:"company"`
	Category  *string  `json:"category"`
	Skills    []string `json:"skills"`
}

// UpdateProfile handles PUT /users/me
func (h *UserHandlers) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	updated, err := h.authSvc.UpdateProfile(c.Request.Context(), user.ID, domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
		Company:   req.Company,
		Category:  req.Category,
		Skills:    req.Skills,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"user": updated.PublicProfile()})
}

// Search handles GET /users/search?q=&limit=
func (h *UserHandlers) Search(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	users, err := h.searchSvc.SearchUsers(c.Request.Context(), user.ID, c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"users": users})
}

// SearchHistory handles GET /search/history
func (h *UserHandlers) SearchHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	entries, err := h.searchSvc.History(c.Request.Context(), user.ID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	history := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		history = append(history, gin.H{
			"id":        e.ID,
			"query":     e.Query,
			"createdAt": e.CreatedAt,
		})
	}
	respondOK(c, gin.H{"entries": history})
}

// ClearSearchHistory handles DELETE /search/history
func (h *UserHandlers) ClearSearchHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	if err := h.searchSvc.ClearHistory(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"success": true})
}

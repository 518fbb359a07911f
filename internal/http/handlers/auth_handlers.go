package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MEDWEDU/Lettera/domain"
)

// AuthHandlers handles authentication HTTP requests.
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers.
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// VerifyEmailRequest represents a verification code submission
type VerifyEmailRequest struct {
	Email            string `json:"email" binding:"required,email"`
	VerificationCode string `json:"verificationCode" binding:"required,len=6,numeric"`
}

// ResendVerificationRequest represents a code resend request
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Register handles POST /auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful. Check your inbox for the verification code.",
		"email":   user.Email,
	})
}

// VerifyEmail handles POST /auth/verify-email
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	result, err := h.authSvc.VerifyEmail(c.Request.Context(), req.Email, req.VerificationCode)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"user":         result.User.PublicProfile(),
	})
}

// ResendVerification handles POST /auth/resend-verification
func (h *AuthHandlers) ResendVerification(c *gin.Context) {
	var req ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	if err := h.authSvc.ResendVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"success": true})
}

// Refresh handles POST /auth/refresh-token
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	})
}

// Logout handles POST /auth/logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"success": true})
}

// Me handles GET /auth/me (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, domain.ErrAccessTokenRequired)
		return
	}

	respondOK(c, gin.H{"user": user.PublicProfile()})
}

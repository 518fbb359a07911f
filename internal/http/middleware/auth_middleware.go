package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MEDWEDU/Lettera/domain"
)

// AuthMW gates routes behind a bearer access token.
type AuthMW struct {
	authSvc domain.AuthService
}

// NewAuthMW creates the auth middleware.
func NewAuthMW(authSvc domain.AuthService) *AuthMW {
	return &AuthMW{authSvc: authSvc}
}

// RequireAuth validates the bearer token and re-checks verification status
// against the store on every request: a structurally valid token is not
// enough on its own.
func (m *AuthMW) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithDomainError(c, domain.ErrAccessTokenRequired)
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			abortWithDomainError(c, domain.ErrAccessTokenRequired)
			return
		}

		user, err := m.authSvc.Authenticate(c.Request.Context(), tokenParts[1])
		if err != nil {
			var domainErr *domain.Error
			if !errors.As(err, &domainErr) {
				domainErr = domain.ErrInvalidToken
			}
			abortWithDomainError(c, domainErr)
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

func abortWithDomainError(c *gin.Context, err *domain.Error) {
	requestID, _ := c.Get("request_id")
	reqID, _ := requestID.(string)
	c.AbortWithStatusJSON(err.Status, gin.H{"error": gin.H{
		"message":    err.Message,
		"code":       err.Code,
		"statusCode": err.Status,
		"requestId":  reqID,
	}})
}

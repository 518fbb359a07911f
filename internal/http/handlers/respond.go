package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MEDWEDU/Lettera/domain"
)

// RequestIDKey is the gin context key the logging middleware stores the
// request ID under.
const RequestIDKey = "request_id"

// ErrorBody is the uniform error envelope shared by every route.
type ErrorBody struct {
	Message    string   `json:"message"`
	Code       string   `json:"code"`
	StatusCode int      `json:"statusCode"`
	RequestID  string   `json:"requestId"`
	Details    []string `json:"details,omitempty"`
}

// respondError maps a domain error to the envelope. Anything outside the
// closed taxonomy becomes a generic 500 with no internal detail.
func respondError(c *gin.Context, err error) {
	requestID, _ := c.Get(RequestIDKey)
	reqID, _ := requestID.(string)

	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		domainErr = domain.ErrInternal
	}

	c.AbortWithStatusJSON(domainErr.Status, gin.H{"error": ErrorBody{
		Message:    domainErr.Message,
		Code:       domainErr.Code,
		StatusCode: domainErr.Status,
		RequestID:  reqID,
		Details:    domainErr.Details,
	}})
}

// respondValidation reports a request binding failure.
func respondValidation(c *gin.Context, err error) {
	respondError(c, domain.ErrValidation.WithDetails(err.Error()))
}

// currentUser returns the authenticated user installed by the auth
// middleware.
func currentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

// respondOK writes a plain success payload.
func respondOK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}

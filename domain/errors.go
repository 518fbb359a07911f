package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain failure carrying a stable machine-readable code
// and the HTTP status it maps to. The route layer translates these into the
// uniform error envelope without re-deriving semantics.
type Error struct {
	Code    string
	Status  int
	Message string
	Details []string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is makes two domain errors equal when their codes match, so wrapped and
// detailed variants still satisfy errors.Is against the sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithDetails returns a copy of the error carrying extra detail strings.
func (e *Error) WithDetails(details ...string) *Error {
	clone := *e
	clone.Details = details
	return &clone
}

// WithCause returns a copy of the error wrapping an underlying cause.
func (e *Error) WithCause(err error) *Error {
	clone := *e
	clone.cause = err
	return &clone
}

func newError(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Validation and registration errors
var (
	ErrValidation   = newError("VALIDATION_ERROR", http.StatusBadRequest, "invalid request")
	ErrWeakPassword = newError("WEAK_PASSWORD", http.StatusBadRequest, "password does not meet the strength policy")
	ErrEmailExists  = newError("EMAIL_ALREADY_EXISTS", http.StatusConflict, "an account with this email already exists")
)

// Verification errors
var (
	ErrCodeExpired          = newError("CODE_EXPIRED", http.StatusBadRequest, "verification code has expired or was not found")
	ErrInvalidCode          = newError("INVALID_CODE", http.StatusBadRequest, "invalid verification code")
	ErrAlreadyVerified      = newError("ALREADY_VERIFIED", http.StatusBadRequest, "email is already verified")
	ErrEmailAlreadyVerified = newError("EMAIL_ALREADY_VERIFIED", http.StatusBadRequest, "email is already verified")
)

// Lookup errors
var (
	ErrUserNotFound  = newError("USER_NOT_FOUND", http.StatusNotFound, "user not found")
	ErrChatNotFound  = newError("CHAT_NOT_FOUND", http.StatusNotFound, "chat not found")
	ErrMediaNotFound = newError("MEDIA_NOT_FOUND", http.StatusNotFound, "media not found")
)

// Credential errors
var (
	ErrInvalidToken        = newError("INVALID_TOKEN", http.StatusUnauthorized, "invalid token")
	ErrTokenExpired        = newError("TOKEN_EXPIRED", http.StatusUnauthorized, "token has expired")
	ErrWrongTokenType      = newError("WRONG_TOKEN_TYPE", http.StatusUnauthorized, "token type mismatch")
	ErrInvalidRefreshToken = newError("INVALID_REFRESH_TOKEN", http.StatusUnauthorized, "invalid refresh token")
	ErrAccessTokenRequired = newError("ACCESS_TOKEN_REQUIRED", http.StatusUnauthorized, "access token required")
	ErrEmailNotVerified    = newError("EMAIL_NOT_VERIFIED", http.StatusUnauthorized, "email is not verified")
	ErrForbidden           = newError("FORBIDDEN", http.StatusForbidden, "operation not permitted")
)

// Dependency and dispatch errors
var (
	ErrDependency          = newError("DEPENDENCY_ERROR", http.StatusServiceUnavailable, "a backing service is unavailable")
	ErrEmailDispatchFailed = newError("EMAIL_DISPATCH_FAILED", http.StatusBadGateway, "verification email could not be sent")
	ErrInternal            = newError("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

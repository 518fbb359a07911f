package domain

import (
	"context"
	"io"
	"time"
)

// UserRepository defines identity record access in the durable store.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	MarkVerified(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]*User, error)
}

// ChatRepository defines chat record access.
type ChatRepository interface {
	Create(ctx context.Context, chat *Chat) error
	FindByID(ctx context.Context, id string) (*Chat, error)
	FindByParticipants(ctx context.Context, a, b string) (*Chat, error)
	ListByUser(ctx context.Context, userID string) ([]*Chat, error)
	Touch(ctx context.Context, chatID, lastMessage string, at time.Time) error
}

// MessageRepository defines message record access.
type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	ListByChat(ctx context.Context, chatID string, limit int, before time.Time) ([]*Message, error)
}

// MediaRepository defines media metadata access.
type MediaRepository interface {
	Create(ctx context.Context, media *Media) error
	FindByID(ctx context.Context, id string) (*Media, error)
	Delete(ctx context.Context, id string) error
}

// SearchRepository defines search history access.
type SearchRepository interface {
	Append(ctx context.Context, entry *SearchEntry) error
	LastByUser(ctx context.Context, userID string) (*SearchEntry, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*SearchEntry, error)
	ClearByUser(ctx context.Context, userID string) error
}

// TokenRepository persists the refresh credential set per identity. A refresh
// token absent from the set is invalid regardless of its own expiry claim.
type TokenRepository interface {
	Replace(ctx context.Context, userID, refreshToken string, ttl time.Duration) error
	Contains(ctx context.Context, userID, refreshToken string) (bool, error)
	RevokeAll(ctx context.Context, userID string) error
}

// PresenceRepository tracks the TTL-bound online markers.
type PresenceRepository interface {
	Set(ctx context.Context, userID string, status PresenceStatus, ttl time.Duration) error
	Get(ctx context.Context, userID string) (PresenceStatus, error)
	GetMany(ctx context.Context, userIDs []string) (map[string]PresenceStatus, error)
}

// AuthService defines the account state machine and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*User, error)
	VerifyEmail(ctx context.Context, email, code string) (*AuthResult, error)
	ResendVerification(ctx context.Context, email string) error
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, userID string) error
	Authenticate(ctx context.Context, accessToken string) (*User, error)
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
}

// ProfileUpdate carries the owner-mutable profile fields. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Position  *string
	Company   *string
	Category  *string
	Skills    []string
}

// VerificationService owns the one-time email verification codes.
type VerificationService interface {
	Issue(ctx context.Context, email string) (string, error)
	Consume(ctx context.Context, email, code string) error
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines stateless token signing and verification. Liveness of
// a refresh token is tracked by TokenRepository, not by the token itself.
type TokenService interface {
	GenerateAccessToken(userID, email string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// MailerService defines outbound email dispatch.
type MailerService interface {
	SendVerificationEmail(to, code string) error
}

// ChatService defines one-to-one chat operations.
type ChatService interface {
	OpenChat(ctx context.Context, userID, peerID string) (*Chat, error)
	ListChats(ctx context.Context, userID string) ([]*Chat, error)
	SendMessage(ctx context.Context, userID, chatID, text, mediaID string) (*Message, error)
	ListMessages(ctx context.Context, userID, chatID string, limit int, before time.Time) ([]*Message, error)
}

// MediaService defines media upload and lifecycle operations.
type MediaService interface {
	Upload(ctx context.Context, userID, filename, contentType string, size int64, r io.Reader) (*Media, string, error)
	Delete(ctx context.Context, userID, mediaID string) error
	PresignGet(ctx context.Context, userID, mediaID string) (string, error)
}

// PresenceService defines poll-based presence tracking.
type PresenceService interface {
	Ping(ctx context.Context, userID string, status PresenceStatus) error
	Get(ctx context.Context, userID string) (PresenceStatus, error)
	GetMany(ctx context.Context, userIDs []string) (map[string]PresenceStatus, error)
}

// SearchService defines user search and search history operations.
type SearchService interface {
	SearchUsers(ctx context.Context, userID, query string, limit int) ([]*PublicUser, error)
	History(ctx context.Context, userID string, limit int) ([]*SearchEntry, error)
	ClearHistory(ctx context.Context, userID string) error
}

// MediaStore abstracts the object storage service.
type MediaStore interface {
	Put(ctx context.Context, key, contentType string, size int64, r io.Reader) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

package domain

import "time"

// User represents an identity record in the durable store.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Verified     bool
	FirstName    string
	LastName     string
	Position     string
	Company      string
	Category     string
	Skills       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicProfile returns the projection of a user that may be sent to clients.
// The password hash never leaves the domain layer.
func (u *User) PublicProfile() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Verified:  u.Verified,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Position:  u.Position,
		Company:   u.Company,
		Category:  u.Category,
		Skills:    u.Skills,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the client-visible projection of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Verified  bool      `json:"emailVerified"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Position  string    `json:"position,omitempty"`
	Company   string    `json:"company,omitempty"`
	Category  string    `json:"category,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult represents the outcome of a successful verification or refresh.
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenType discriminates access tokens from refresh tokens. A structurally
// valid token presented as the wrong type must be rejected.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenClaims represents the verified claims of a JWT.
type TokenClaims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	TokenType TokenType `json:"token_type"`
	IssuedAt  int64     `json:"iat"`
	ExpiresAt int64     `json:"exp"`
}

// Chat represents a one-to-one conversation. Participants are stored as a
// sorted pair so the same two users always resolve to the same chat.
type Chat struct {
	ID            string
	Participants  [2]string
	LastMessage   string
	LastMessageAt time.Time
	CreatedAt     time.Time
}

// HasParticipant reports whether userID belongs to the chat.
func (c *Chat) HasParticipant(userID string) bool {
	return c.Participants[0] == userID || c.Participants[1] == userID
}

// Message represents a single chat message.
type Message struct {
	ID        string
	ChatID    string
	SenderID  string
	Text      string
	MediaID   string
	CreatedAt time.Time
}

// Media represents metadata for an object kept in object storage.
type Media struct {
	ID          string
	OwnerID     string
	Filename    string
	ContentType string
	Size        int64
	StorageKey  string
	CreatedAt   time.Time
}

// SearchEntry represents one entry in a user's search history.
type SearchEntry struct {
	ID        string
	UserID    string
	Query     string
	CreatedAt time.Time
}

// PresenceStatus is the ephemeral online marker for a user. An absent
// presence record means offline.
type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceAway    PresenceStatus = "away"
	PresenceOffline PresenceStatus = "offline"
)

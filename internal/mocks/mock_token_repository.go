package mocks

import (
	"context"
	"time"
)

// MockTokenRepository implements domain.TokenRepository for testing
type MockTokenRepository struct {
	ReplaceFunc   func(ctx context.Context, userID, refreshToken string, ttl time.Duration) error
	ContainsFunc  func(ctx context.Context, userID, refreshToken string) (bool, error)
	RevokeAllFunc func(ctx context.Context, userID string) error
}

// NewMockTokenRepository creates a new MockTokenRepository with default behaviors
func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{}
}

// Replace swaps the stored refresh token for a user
func (m *MockTokenRepository) Replace(ctx context.Context, userID, refreshToken string, ttl time.Duration) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, userID, refreshToken, ttl)
	}
	return nil
}

// Contains reports whether the token is the live one for the user
func (m *MockTokenRepository) Contains(ctx context.Context, userID, refreshToken string) (bool, error) {
	if m.ContainsFunc != nil {
		return m.ContainsFunc(ctx, userID, refreshToken)
	}
	// Default behavior: token is live
	return true, nil
}

// RevokeAll drops every refresh token for the user
func (m *MockTokenRepository) RevokeAll(ctx context.Context, userID string) error {
	if m.RevokeAllFunc != nil {
		return m.RevokeAllFunc(ctx, userID)
	}
	return nil
}

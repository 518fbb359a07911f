package mocks

import (
	"context"

	"github.com/MEDWEDU/Lettera/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc           func(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error)
	VerifyEmailFunc        func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	ResendVerificationFunc func(ctx context.Context, email string) error
	RefreshFunc            func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc             func(ctx context.Context, userID string) error
	AuthenticateFunc       func(ctx context.Context, accessToken string) (*domain.User, error)
	GetProfileFunc         func(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfileFunc      func(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register creates a pending account
func (m *MockAuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, firstName, lastName)
	}
	return &domain.User{ID: "u1", Email: email, FirstName: firstName, LastName: lastName}, nil
}

// VerifyEmail finishes registration
func (m *MockAuthService) VerifyEmail(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, email, code)
	}
	return nil, domain.ErrInvalidCode
}

// ResendVerification reissues a verification code
func (m *MockAuthService) ResendVerification(ctx context.Context, email string) error {
	if m.ResendVerificationFunc != nil {
		return m.ResendVerificationFunc(ctx, email)
	}
	return nil
}

// Refresh rotates a session token pair
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return nil, domain.ErrInvalidRefreshToken
}

// Logout revokes the user's refresh tokens
func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return nil
}

// Authenticate resolves an access token to its user
func (m *MockAuthService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, accessToken)
	}
	return nil, domain.ErrInvalidToken
}

// GetProfile returns the user's own record
func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// UpdateProfile applies a partial profile update
func (m *MockAuthService) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, update)
	}
	return nil, domain.ErrUserNotFound
}

package mocks

import "context"

// MockVerificationService implements domain.VerificationService for testing
type MockVerificationService struct {
	IssueFunc   func(ctx context.Context, email string) (string, error)
	ConsumeFunc func(ctx context.Context, email, code string) error
}

// NewMockVerificationService creates a new MockVerificationService with default behaviors
func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

// Issue generates and stores a verification code
func (m *MockVerificationService) Issue(ctx context.Context, email string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, email)
	}
	return "123456", nil
}

// Consume validates and burns a verification code
func (m *MockVerificationService) Consume(ctx context.Context, email, code string) error {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, email, code)
	}
	return nil
}

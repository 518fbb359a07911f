package mocks

// MockMailerService implements domain.MailerService for testing
type MockMailerService struct {
	SendVerificationEmailFunc func(to, code string) error
}

// NewMockMailerService creates a new MockMailerService with default behaviors
func NewMockMailerService() *MockMailerService {
	return &MockMailerService{}
}

// SendVerificationEmail sends a verification code email
func (m *MockMailerService) SendVerificationEmail(to, code string) error {
	if m.SendVerificationEmailFunc != nil {
		return m.SendVerificationEmailFunc(to, code)
	}
	return nil
}

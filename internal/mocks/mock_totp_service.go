package mocks

// MockTOTPService implements domain.TOTPService for testing
type MockTOTPService struct {
	GenerateSecretFunc func(accountName string) (string, string, error)
	ValidateFunc       func(secret, code string) bool
}

// NewMockTOTPService creates a new MockTOTPService with default behaviors
func NewMockTOTPService() *MockTOTPService {
	return &MockTOTPService{}
}

// GenerateSecret returns a fresh secret and provisioning URI
func (m *MockTOTPService) GenerateSecret(accountName string) (string, string, error) {
	if m.GenerateSecretFunc != nil {
		return m.GenerateSecretFunc(accountName)
	}
	// Default behavior: fixed test secret
	return "JBSWY3DPEHPK3PXP", "otpauth://totp/test:" + accountName + "?secret=JBSWY3DPEHPK3PXP", nil
}

// Validate checks a submitted code against a secret
func (m *MockTOTPService) Validate(secret, code string) bool {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(secret, code)
	}
	// Default behavior: accept the canonical test code
	return code == "123456"
}

package mocks

import (
	"context"
	"time"

	"github.com/you/twofasvc/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, username, password string) (*domain.RegistrationResult, error)
	BeginLoginFunc     func(ctx context.Context, username, password string) (*domain.PendingAuth, error)
	CompleteLoginFunc  func(ctx context.Context, pendingToken, code string) (*domain.AuthResult, error)
	LogoutFunc         func(ctx context.Context, sessionID string) error
	GetUserProfileFunc func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, username, password string) (*domain.RegistrationResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, password)
	}
	return &domain.RegistrationResult{
		UserID:          1,
		Username:        username,
		ProvisioningURI: "otpauth://totp/test:" + username + "?secret=JBSWY3DPEHPK3PXP",
	}, nil
}

// BeginLogin starts the password stage of login
func (m *MockAuthService) BeginLogin(ctx context.Context, username, password string) (*domain.PendingAuth, error) {
	if m.BeginLoginFunc != nil {
		return m.BeginLoginFunc(ctx, username, password)
	}
	now := time.Now()
	return &domain.PendingAuth{
		Token:     "pending_test_token",
		UserID:    1,
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}, nil
}

// CompleteLogin finishes the second-factor stage of login
func (m *MockAuthService) CompleteLogin(ctx context.Context, pendingToken, code string) (*domain.AuthResult, error) {
	if m.CompleteLoginFunc != nil {
		return m.CompleteLoginFunc(ctx, pendingToken, code)
	}
	return &domain.AuthResult{
		User:         &domain.User{ID: 1, Username: "testuser"},
		SessionID:    "session_test",
		SessionToken: "token_1_session_test",
		ExpiresIn:    3600,
	}, nil
}

// Logout destroys a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// GetUserProfile loads a user by ID
func (m *MockAuthService) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	return &domain.User{ID: userID, Username: "testuser"}, nil
}

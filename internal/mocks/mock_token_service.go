package mocks

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/you/twofasvc/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateSessionTokenFunc func(userID uint, sessionID string) (string, error)
	ValidateSessionTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateSessionToken generates a session token
func (m *MockTokenService) GenerateSessionToken(userID uint, sessionID string) (string, error) {
	if m.GenerateSessionTokenFunc != nil {
		return m.GenerateSessionTokenFunc(userID, sessionID)
	}
	// Default behavior: parseable fake token
	return fmt.Sprintf("token_%d_%s", userID, sessionID), nil
}

// ValidateSessionToken validates a session token
func (m *MockTokenService) ValidateSessionToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateSessionTokenFunc != nil {
		return m.ValidateSessionTokenFunc(token)
	}
	// Default behavior: parse the fake token format
	parts := strings.SplitN(token, "_", 3)
	if len(parts) != 3 || parts[0] != "token" {
		return nil, domain.ErrTokenInvalid
	}
	userID, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    uint(userID),
		SessionID: parts[2],
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

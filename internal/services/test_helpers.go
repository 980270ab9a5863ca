package services

import (
	"testing"

	"github.com/you/twofasvc/domain"
	"github.com/you/twofasvc/internal/logger"
	"github.com/you/twofasvc/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies.
// Nil arguments are replaced with default mocks.
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	pendingRepo domain.PendingAuthRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	totpSvc domain.TOTPService,
	tokenSvc domain.TokenService,
	config AuthConfig,
) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if pendingRepo == nil {
		pendingRepo = mocks.NewMockPendingAuthRepository()
	}
	if sessionRepo == nil {
		sessionRepo = mocks.NewMockSessionRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if totpSvc == nil {
		totpSvc = mocks.NewMockTOTPService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}

	svc, err := NewAuthService(userRepo, pendingRepo, sessionRepo, passwordSvc, totpSvc, tokenSvc, config, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create auth service: %v", err)
	}
	return svc
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you/twofasvc/domain"
	"github.com/you/twofasvc/internal/logger"
)

// AuthConfig holds the tunables of the two-stage login flow
type AuthConfig struct {
	PendingTTL time.Duration
	SessionTTL time.Duration
}

// AuthServiceImpl implements domain.AuthService. It owns the login state
// machine: anonymous -> password verified (PendingAuth) -> authenticated
// (Session). Only this service may promote a pending attempt to a session.
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	pendingRepo domain.PendingAuthRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	totpSvc     domain.TOTPService
	tokenSvc    domain.TokenService
	config      AuthConfig
	log         *logger.Logger

	// bcrypt hash of an unguessable throwaway value, compared against on the
	// unknown-username path so it costs the same as a real verification.
	decoyHash string
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	pendingRepo domain.PendingAuthRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	totpSvc domain.TOTPService,
	tokenSvc domain.TokenService,
	config AuthConfig,
	log *logger.Logger,
) (domain.AuthService, error) {
	decoyHash, err := passwordSvc.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare decoy hash: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	return &AuthServiceImpl{
		userRepo:    userRepo,
		pendingRepo: pendingRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		totpSvc:     totpSvc,
		tokenSvc:    tokenSvc,
		config:      config,
		log:         log,
		decoyHash:   decoyHash,
	}, nil
}

// Register implements domain.AuthService. The record is written in a single
// insert with both the password hash and the TOTP secret set, so a user is
// either fully provisioned or absent. Uniqueness is enforced by the store,
// not by a racy pre-check.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (*domain.RegistrationResult, error) {
	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	secret, provisioningURI, err := s.totpSvc.GenerateSecret(username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate TOTP secret: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hashedPassword,
		TOTPSecret:   secret,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			s.audit(domain.NewAuditEvent(domain.UserRegistrationFailureEvent, 0).
				WithUsername(username).WithError(err))
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.audit(domain.NewAuditEvent(domain.UserRegistrationEvent, user.ID).WithUsername(username))

	// The provisioning URI embeds the secret. This response is the only time
	// it leaves the store.
	return &domain.RegistrationResult{
		UserID:          user.ID,
		Username:        user.Username,
		ProvisioningURI: provisioningURI,
	}, nil
}

// BeginLogin implements domain.AuthService. Unknown usernames and wrong
// passwords produce the identical ErrInvalidCredentials outcome, and the
// unknown-username path still performs a full-cost hash comparison so the
// two cases are indistinguishable by response time.
func (s *AuthServiceImpl) BeginLogin(ctx context.Context, username, password string) (*domain.PendingAuth, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.passwordSvc.Verify(s.decoyHash, password)
			s.audit(domain.NewAuditEvent(domain.PasswordRejectedEvent, 0).
				WithUsername(username).WithError(domain.ErrInvalidCredentials))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		s.audit(domain.NewAuditEvent(domain.PasswordRejectedEvent, user.ID).
			WithUsername(username).WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	pending := &domain.PendingAuth{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.PendingTTL),
	}

	if err := s.pendingRepo.Create(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to create pending auth: %w", err)
	}

	s.audit(domain.NewAuditEvent(domain.PasswordVerifiedEvent, user.ID).WithUsername(username))
	return pending, nil
}

// CompleteLogin implements domain.AuthService. A wrong code leaves the
// pending attempt in place for retry; a correct code consumes it exactly
// once and creates the session.
func (s *AuthServiceImpl) CompleteLogin(ctx context.Context, pendingToken, code string) (*domain.AuthResult, error) {
	pending, err := s.pendingRepo.Find(ctx, pendingToken)
	if err != nil {
		if errors.Is(err, domain.ErrPendingAuthExpired) {
			s.audit(domain.NewAuditEvent(domain.SecondFactorExpiredEvent, 0).
				WithError(domain.ErrPendingAuthExpired))
			return nil, domain.ErrPendingAuthExpired
		}
		return nil, fmt.Errorf("failed to look up pending auth: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, pending.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for pending auth: %w", err)
	}

	if !s.totpSvc.Validate(user.TOTPSecret, code) {
		s.audit(domain.NewAuditEvent(domain.SecondFactorFailedEvent, user.ID).
			WithUsername(user.Username).WithError(domain.ErrInvalidCode))
		return nil, domain.ErrInvalidCode
	}

	// Consume promotes at most once: if a concurrent request already took
	// this attempt, the pending state is gone and this call reports expired.
	if _, err := s.pendingRepo.Consume(ctx, pendingToken); err != nil {
		if errors.Is(err, domain.ErrPendingAuthExpired) {
			return nil, domain.ErrPendingAuthExpired
		}
		return nil, fmt.Errorf("failed to consume pending auth: %w", err)
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.SessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	sessionToken, err := s.tokenSvc.GenerateSessionToken(user.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	s.audit(domain.NewAuditEvent(domain.SecondFactorPassedEvent, user.ID).
		WithUsername(user.Username).WithSession(session.ID))

	return &domain.AuthResult{
		User:         user,
		SessionID:    session.ID,
		SessionToken: sessionToken,
		ExpiresIn:    int64(s.config.SessionTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService. Idempotent: logging out a session
// that no longer exists succeeds.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.audit(domain.NewAuditEvent(domain.UserLogoutEvent, 0).WithSession(sessionID))
	return nil
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *AuthServiceImpl) audit(e *domain.AuditEvent) {
	evt := s.log.Info()
	if !e.Success {
		evt = s.log.Warn()
	}
	evt.Str("event_type", string(e.EventType)).
		Uint("user_id", e.UserID).
		Str("username", e.Username).
		Str("session_id", e.SessionID).
		Bool("success", e.Success).
		Str("error", e.ErrorMsg).
		Time("at", e.Timestamp).
		Msg("auth event")
}

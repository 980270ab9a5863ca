package domain

import "context"

// UserRepository defines credential-record data access operations.
// Create must be atomic with respect to the username uniqueness check: under
// concurrent calls with the same username exactly one succeeds and the rest
// fail with ErrUserAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
}

// PendingAuthRepository holds the transient password-verified state between
// the two login stages
type PendingAuthRepository interface {
	Create(ctx context.Context, pending *PendingAuth) error
	Find(ctx context.Context, token string) (*PendingAuth, error)
	// Consume atomically fetches and deletes a pending attempt so it can be
	// promoted at most once.
	Consume(ctx context.Context, token string) (*PendingAuth, error)
	Delete(ctx context.Context, token string) error
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService defines the two-stage authentication flow
type AuthService interface {
	Register(ctx context.Context, username, password string) (*RegistrationResult, error)
	BeginLogin(ctx context.Context, username, password string) (*PendingAuth, error)
	CompleteLogin(ctx context.Context, pendingToken, code string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TOTPService defines time-based one-time-password operations
type TOTPService interface {
	// GenerateSecret returns a fresh base32 secret and the otpauth://
	// provisioning URI for the given account name.
	GenerateSecret(accountName string) (secret string, provisioningURI string, err error)
	// Validate reports whether code is valid for secret within the
	// configured clock-drift window. Malformed codes return false.
	Validate(secret, code string) bool
}

// TokenService defines signed session-token operations
type TokenService interface {
	GenerateSessionToken(userID uint, sessionID string) (string, error)
	ValidateSessionToken(token string) (*TokenClaims, error)
}

// QRService renders a provisioning URI as an image for enrollment
type QRService interface {
	RenderPNG(provisioningURI string) ([]byte, error)
}

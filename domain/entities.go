package domain

import "time"

// User represents a registered account with a provisioned second factor
type User struct {
	ID           uint
	Username     string
	PasswordHash string `gorm:"column:password"`
	TOTPSecret   string `gorm:"column:totp_secret"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LoginRequest represents first-stage authentication credentials
type LoginRequest struct {
	Username string
	Password string
}

// RegistrationResult represents the outcome of a successful registration.
// ProvisioningURI is the only place the TOTP secret ever leaves the store,
// encoded for enrollment into an authenticator app.
type RegistrationResult struct {
	UserID          uint
	Username        string
	ProvisioningURI string
}

// PendingAuth marks a login attempt that has passed password verification
// but not yet the second factor. It references the user, never the secret.
type PendingAuth struct {
	Token     string
	UserID    uint
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Session represents an authenticated user session
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AuthResult represents a completed two-stage login
type AuthResult struct {
	User         *User
	SessionID    string
	SessionToken string
	ExpiresIn    int64
}

// TokenClaims represents the claims carried by a signed session token
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	SessionID string `json:"session_id"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

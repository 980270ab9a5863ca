package domain

import "errors"

// Authentication errors. ErrInvalidCredentials deliberately covers both
// unknown-username and wrong-password so callers cannot enumerate accounts.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

// Second-factor errors
var (
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrPendingAuthExpired = errors.New("no pending login for this attempt")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Infrastructure errors
var (
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

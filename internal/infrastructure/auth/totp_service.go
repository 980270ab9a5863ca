package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/you/twofasvc/domain"
)

// TOTPServiceImpl implements domain.TOTPService using the pquerna/otp
// library with the standard parameters: 30 second period, 6 digits, SHA1.
type TOTPServiceImpl struct {
	issuer string
}

// NewTOTPService creates a new TOTP service. issuer is the name shown in the
// user's authenticator app.
func NewTOTPService(issuer string) domain.TOTPService {
	if strings.TrimSpace(issuer) == "" {
		issuer = "twofasvc"
	}
	return &TOTPServiceImpl{issuer: issuer}
}

// GenerateSecret implements domain.TOTPService. The returned secret is a
// fresh 160-bit value, base32 encoded, paired with its otpauth:// URI.
func (s *TOTPServiceImpl) GenerateSecret(accountName string) (string, string, error) {
	if strings.TrimSpace(accountName) == "" {
		return "", "", fmt.Errorf("account name cannot be empty")
	}
	if strings.Contains(accountName, ":") {
		return "", "", fmt.Errorf("account name cannot contain a colon")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: accountName,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
		SecretSize:  20,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	return key.Secret(), key.URL(), nil
}

// Validate implements domain.TOTPService. Skew of 1 accepts the previous and
// next 30-second window to absorb clock drift. Malformed codes (wrong
// length, non-numeric) validate false rather than erroring.
func (s *TOTPServiceImpl) Validate(secret, code string) bool {
	if strings.TrimSpace(secret) == "" || strings.TrimSpace(code) == "" {
		return false
	}

	valid, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return false
	}
	return valid
}

var _ domain.TOTPService = (*TOTPServiceImpl)(nil)

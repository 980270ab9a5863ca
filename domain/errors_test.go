package domain

import (
	"errors"
	"testing"
)

func TestAuthenticationErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "ErrUserNotFound",
			err:         ErrUserNotFound,
			expectedMsg: "user not found",
		},
		{
			name:        "ErrInvalidCredentials",
			err:         ErrInvalidCredentials,
			expectedMsg: "invalid credentials",
		},
		{
			name:        "ErrUserAlreadyExists",
			err:         ErrUserAlreadyExists,
			expectedMsg: "user already exists",
		},
		{
			name:        "ErrInvalidCode",
			err:         ErrInvalidCode,
			expectedMsg: "invalid verification code",
		},
		{
			name:        "ErrPendingAuthExpired",
			err:         ErrPendingAuthExpired,
			expectedMsg: "no pending login for this attempt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}

			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected error message %q, got %q", tt.expectedMsg, tt.err.Error())
			}

			// Error kinds must stay distinct: collapsing them would leak or
			// hide authentication detail at the HTTP boundary.
			for _, other := range tests {
				if other.name != tt.name && errors.Is(tt.err, other.err) {
					t.Errorf("error %s should not be equal to %s", tt.name, other.name)
				}
			}
		})
	}
}

func TestWrappedInfrastructureErrors(t *testing.T) {
	wrapped := errors.Join(ErrStoreUnavailable)

	if !errors.Is(wrapped, ErrStoreUnavailable) {
		t.Error("wrapped infrastructure error should match ErrStoreUnavailable")
	}
	if errors.Is(wrapped, ErrInvalidCredentials) {
		t.Error("infrastructure error must not match a credential error")
	}
}

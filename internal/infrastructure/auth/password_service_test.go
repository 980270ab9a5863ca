package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "Secr3t!"},
		{name: "long password", password: strings.Repeat("correct-horse-", 4)},
		{name: "unicode password", password: "pässwörd-日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := svc.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if hash == tt.password {
				t.Fatal("hash must not equal the plaintext password")
			}
			if !svc.Verify(hash, tt.password) {
				t.Error("Verify() should accept the original password")
			}
			if svc.Verify(hash, tt.password+"x") {
				t.Error("Verify() should reject a different password")
			}
		})
	}
}

func TestPasswordService_SaltFreshness(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	h1, err := svc.Hash("Secr3t!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	h2, err := svc.Hash("Secr3t!")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password should differ (fresh salt per call)")
	}
	if !svc.Verify(h1, "Secr3t!") || !svc.Verify(h2, "Secr3t!") {
		t.Error("both hashes should verify against the original password")
	}
}

func TestPasswordService_MalformedHash(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if svc.Verify(malformed, "anything") {
			t.Errorf("Verify(%q) should fail, not panic or accept", malformed)
		}
	}
}

func TestNewPasswordService_CostClamping(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default rather than failing
	// every Hash call later.
	svc := NewPasswordService(999).(*PasswordServiceImpl)
	if svc.cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, svc.cost)
	}
}

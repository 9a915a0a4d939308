// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"strings"
	"testing"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if err := service.VerifyPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}
	if err := service.VerifyPassword(hash, "wrong password"); err == nil {
		t.Error("expected mismatched password to fail verification")
	}
}

func TestPasswordService_HashesAreSalted(t *testing.T) {
	service := NewPasswordService()

	first, err := service.HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := service.HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Error("expected distinct hashes for the same password")
	}
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	service := NewPasswordService()

	if err := service.ValidatePasswordStrength("short"); err == nil {
		t.Error("expected short password to be rejected")
	}
	if err := service.ValidatePasswordStrength("longenough"); err != nil {
		t.Errorf("expected valid password to pass, got %v", err)
	}
}

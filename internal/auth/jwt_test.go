package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/nkale/homeboard/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	user := &models.User{ID: "u1", Email: "alice@example.com"}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	session, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if session.UserID != "u1" {
		t.Errorf("user id = %q, want u1", session.UserID)
	}
	if session.Email != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", session.Email)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signer := NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	verifier := NewJWTManager("fedcba9876543210fedcba9876543210", time.Hour)

	token, err := signer.Generate(&models.User{ID: "u1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("0123456789abcdef0123456789abcdef", -time.Minute)

	token, err := m.Generate(&models.User{ID: "u1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)

	if _, err := m.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate error = %v, want ErrInvalidToken", err)
	}
}

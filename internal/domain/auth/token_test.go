package auth

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	principal := Principal{UserID: "user-1", Role: RoleManager}

	token, err := GenerateToken(secret, principal, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	parsed, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if parsed.UserID != principal.UserID {
		t.Fatalf("expected user %q, got %q", principal.UserID, parsed.UserID)
	}
	if parsed.Role != principal.Role {
		t.Fatalf("expected role %q, got %q", principal.Role, parsed.Role)
	}
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken("test-secret", Principal{UserID: "user-1", Role: RoleEmployee}, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken("test-secret", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestTokenTampered(t *testing.T) {
	token, err := GenerateToken("test-secret", Principal{UserID: "user-1", Role: RoleEmployee}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + flipByte(parts[1]) + "." + parts[2]

	if _, err := ParseToken("test-secret", tampered); err == nil {
		t.Fatal("expected error for tampered token")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", Principal{UserID: "user-1", Role: RoleAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestTokenGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken("test-secret", token); err == nil {
			t.Fatalf("expected error for token %q", token)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("S3curePass")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "S3curePass" {
		t.Fatal("hash must not equal plaintext")
	}
	if err := CheckPassword(hash, "S3curePass"); err != nil {
		t.Fatalf("expected matching password: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func flipByte(s string) string {
	if s == "" {
		return "x"
	}
	b := []byte(s)
	if b[0] == 'A' {
		b[0] = 'B'
	} else {
		b[0] = 'A'
	}
	return string(b)
}

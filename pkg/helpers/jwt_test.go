package helpers

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.GenerateToken("alice@example.com", 7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Errorf("expiry %v is not in the future", exp)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Errorf("subject = %q, want alice@example.com", claims.Subject)
	}
	if claims.UserID != 7 {
		t.Errorf("uid = %d, want 7", claims.UserID)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, _, err := issuer.GenerateToken("alice@example.com", 7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.GenerateToken("alice@example.com", 7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := m.ParseToken(token); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	if _, err := m.ParseToken("not.a.token"); err == nil {
		t.Error("malformed token was accepted")
	}
}

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals plaintext")
	}
	if !CompareHashAndPassword(hash, "password123") {
		t.Error("matching password rejected")
	}
	if CompareHashAndPassword(hash, "wrongpass") {
		t.Error("wrong password accepted")
	}
}

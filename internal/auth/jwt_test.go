package auth

import (
	"testing"
	"time"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), TTL: time.Hour, Issuer: "portfolio"}

	token, err := m.NewSessionToken("user-1", "pubudu")
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Subject)
	}
	if claims.Username != "pubudu" {
		t.Fatalf("expected username pubudu, got %q", claims.Username)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), TTL: -time.Minute, Issuer: "portfolio"}

	token, err := m.NewSessionToken("user-1", "pubudu")
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected expired token to fail parsing")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := &Manager{Secret: []byte("secret-a"), TTL: time.Hour, Issuer: "portfolio"}
	verifier := &Manager{Secret: []byte("secret-b"), TTL: time.Hour, Issuer: "portfolio"}

	token, err := issuer.NewSessionToken("user-1", "pubudu")
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}

	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected signature mismatch to fail parsing")
	}
}

func TestPasswordHashCompare(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if err := ComparePassword(hash, "hunter22"); err != nil {
		t.Fatalf("ComparePassword error: %v", err)
	}
	if err := ComparePassword(hash, "hunter23"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

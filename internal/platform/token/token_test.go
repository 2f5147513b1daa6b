package token

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	tok, err := issuer.Issue(42, "doctor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "42" {
		t.Errorf("expected subject 42, got %s", claims.Subject)
	}
	if claims.Role != "doctor" {
		t.Errorf("expected role doctor, got %s", claims.Role)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	other := NewIssuer("different-secret", time.Hour)

	tok, err := issuer.Issue(1, "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := other.Parse(tok); err == nil {
		t.Error("expected error for token signed with another secret")
	}
}

func TestParse_Expired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	tok, err := issuer.Issue(1, "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := issuer.Parse(tok); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParse_Garbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	if _, err := issuer.Parse("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

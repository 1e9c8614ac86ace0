package hmactoken

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNew_RequiresSecret(t *testing.T) {
	if _, err := New(Config{Secret: "   "}); !errors.Is(err, ErrSecretEmpty) {
		t.Fatalf("expected ErrSecretEmpty, got %v", err)
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc, err := New(Config{Secret: "s3cret"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, err := svc.Issue(context.Background(), 42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("claims.UserID = %d, want 42", claims.UserID)
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	issuer, _ := New(Config{Secret: "secret-a"})
	verifier, _ := New(Config{Secret: "secret-b"})

	token, err := issuer.Issue(context.Background(), 7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid with wrong secret, got %v", err)
	}
}

func TestVerify_RejectsExpired(t *testing.T) {
	svc, _ := New(Config{Secret: "s3cret", TTL: time.Minute})

	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(context.Background(), 7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Dentro de la ventana
	svc.now = func() time.Time { return issuedAt.Add(30 * time.Second) }
	if _, err := svc.Verify(context.Background(), token); err != nil {
		t.Fatalf("expected valid before expiry, got %v", err)
	}

	// Pasada la ventana
	svc.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	if _, err := svc.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid after expiry, got %v", err)
	}
}

func TestVerify_RejectsGarbage(t *testing.T) {
	svc, _ := New(Config{Secret: "s3cret"})

	for _, tok := range []string{"", "   ", "abc.def.ghi", "header.payload"} {
		_, err := svc.Verify(context.Background(), tok)
		if err == nil {
			t.Fatalf("Verify(%q): expected error", tok)
		}
	}
}

func TestIssue_RequiresUserID(t *testing.T) {
	svc, _ := New(Config{Secret: "s3cret"})

	if _, err := svc.Issue(context.Background(), 0); err == nil {
		t.Fatal("expected error issuing token without user id")
	}
}

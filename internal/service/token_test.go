package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenCodec_IssueAndParse(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"))

	tok, err := codec.Issue("42", TokenKindAccess, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := codec.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Subject != "42" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "42")
	}
	if claims.Kind != TokenKindAccess {
		t.Fatalf("kind mismatch: got %q want %q", claims.Kind, TokenKindAccess)
	}
	if claims.ExpiresAt.Before(time.Now()) {
		t.Fatalf("expiry already in the past: %v", claims.ExpiresAt)
	}
}

func TestTokenCodec_RefreshKind(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"))

	tok, err := codec.Issue("42", TokenKindRefresh, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := codec.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Kind != TokenKindRefresh {
		t.Fatalf("kind mismatch: got %q want %q", claims.Kind, TokenKindRefresh)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("super-secret"))

	tok, err := codec.Issue("42", TokenKindAccess, -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := codec.Parse(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenCodec([]byte("right-secret")).Issue("42", TokenKindAccess, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewTokenCodec([]byte("wrong-secret")).Parse(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenCodec_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := raw.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := NewTokenCodec(secret).Parse(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}

func TestTokenCodec_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenCodec([]byte("super-secret")).Parse("not-a-jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage input, got %v", err)
	}
}

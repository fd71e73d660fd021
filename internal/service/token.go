package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every parse failure: bad signature, expiry,
// malformed payload, missing subject. Callers never learn which.
var ErrInvalidToken = errors.New("invalid token")

type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// TokenClaims is the decoded view of a session token.
type TokenClaims struct {
	Subject   string
	Kind      TokenKind
	ExpiresAt time.Time
}

type tokenPayload struct {
	// Typ is present only on refresh tokens, mirroring the wire
	// format: absence means access.
	Typ string `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec mints and verifies HS256-signed session tokens. Both the
// access and refresh classes go through the same codec; the typ claim
// is the only structural difference.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{secret: secret}
}

func (c *TokenCodec) Issue(subject string, kind TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	payload := tokenPayload{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if kind == TokenKindRefresh {
		payload.Typ = string(TokenKindRefresh)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString(c.secret)
}

func (c *TokenCodec) Parse(tokenStr string) (*TokenClaims, error) {
	payload := &tokenPayload{}
	token, err := jwt.ParseWithClaims(tokenStr, payload, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if payload.Subject == "" {
		return nil, ErrInvalidToken
	}

	kind := TokenKindAccess
	if payload.Typ == string(TokenKindRefresh) {
		kind = TokenKindRefresh
	}

	claims := &TokenClaims{
		Subject: payload.Subject,
		Kind:    kind,
	}
	if payload.ExpiresAt != nil {
		claims.ExpiresAt = payload.ExpiresAt.Time
	}
	return claims, nil
}

package model

import "time"

type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Email    *string `json:"email,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// BlacklistEntry is a revoked token. ExpiredAt carries the token's own
// expiry when it could be recovered, so stale rows can be pruned later.
type BlacklistEntry struct {
	ID        int64
	Token     string
	UserID    int64
	ExpiredAt *time.Time
	CreatedAt time.Time
}

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/my-diary/backend/internal/config"
	"github.com/my-diary/backend/internal/db"
	"github.com/my-diary/backend/internal/model"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 8
	maxPasswordLength = 128
)

// dummyHash is a valid bcrypt hash compared against when the username
// does not exist, so the missing-user and wrong-password paths cost
// the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string, email *string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
}

type BlacklistStore interface {
	InsertBlacklist(ctx context.Context, token string, userID int64, expiredAt *time.Time) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

type AuthService struct {
	users      UserStore
	blacklist  BlacklistStore
	codec      *TokenCodec
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(users UserStore, blacklist BlacklistStore, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	accessTTL, err := time.ParseDuration(cfg.JWTAccessTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}

	refreshTTL, err := time.ParseDuration(cfg.JWTRefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_REFRESH_TTL", ErrMisconfigured)
	}

	return &AuthService{
		users:      users,
		blacklist:  blacklist,
		codec:      NewTokenCodec([]byte(cfg.JWTSecret)),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// Codec exposes the token codec for callers that only need to mint or
// inspect tokens.
func (s *AuthService) Codec() *TokenCodec {
	return s.codec
}

func (s *AuthService) Register(ctx context.Context, username, password string, email *string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return nil, fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidInput, minUsernameLength, maxUsernameLength)
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: password must be %d-%d characters", ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, username, hash, email)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: user already exists", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a fresh token pair. A
// missing user and a wrong password yield the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.TokenPair, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			CheckPassword(password, dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.IssueSession(user)
}

// IssueSession mints an access/refresh pair sharing the user's ID as
// subject. No endpoint exchanges the refresh token yet; it is issued
// for clients that want to hold one.
func (s *AuthService) IssueSession(user *model.User) (*model.TokenPair, error) {
	subject := strconv.FormatInt(user.ID, 10)

	access, err := s.codec.Issue(subject, TokenKindAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := s.codec.Issue(subject, TokenKindRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Logout revokes the presented token. The decode is defensive: a token
// that fails to parse is still recorded verbatim, because the point is
// that this exact string must never work again. When the decode
// succeeds, the recovered expiry is stored so the entry can be pruned
// once it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, token string, userID int64) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	var expiredAt *time.Time
	if claims, err := s.codec.Parse(token); err == nil && !claims.ExpiresAt.IsZero() {
		expiredAt = &claims.ExpiresAt
	}

	if err := s.blacklist.InsertBlacklist(ctx, token, userID, expiredAt); err != nil {
		// Already revoked is success.
		if db.IsUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

// CurrentUser resolves the caller from a bearer token: revocation
// check first, then signature/expiry, then a live re-read of the user
// record. Every negative outcome collapses to ErrUnauthorized.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	revoked, err := s.blacklist.IsTokenBlacklisted(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrUnauthorized
	}

	claims, err := s.codec.Parse(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

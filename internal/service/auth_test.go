package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/my-diary/backend/internal/config"
	"github.com/my-diary/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*model.User{}}
}

func (s *memUserStore) CreateUser(_ context.Context, username, passwordHash string, email *string) (*model.User, error) {
	if _, ok := s.users[username]; ok {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	s.nextID++
	user := &model.User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.users[username] = user
	return user, nil
}

func (s *memUserStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	if user, ok := s.users[username]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *memUserStore) GetUserByID(_ context.Context, userID int64) (*model.User, error) {
	for _, user := range s.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memBlacklist struct {
	tokens map[string]struct{}
}

func newMemBlacklist() *memBlacklist {
	return &memBlacklist{tokens: map[string]struct{}{}}
}

func (s *memBlacklist) InsertBlacklist(_ context.Context, token string, _ int64, _ *time.Time) error {
	if _, ok := s.tokens[token]; ok {
		return &pgconn.PgError{Code: "23505"}
	}
	s.tokens[token] = struct{}{}
	return nil
}

func (s *memBlacklist) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	_, ok := s.tokens[token]
	return ok, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *memUserStore, *memBlacklist) {
	t.Helper()
	users := newMemUserStore()
	blacklist := newMemBlacklist()
	svc, err := NewAuthService(users, blacklist, config.AuthConfig{
		JWTSecret:     "test-secret",
		JWTAccessTTL:  "30m",
		JWTRefreshTTL: "168h",
	})
	require.NoError(t, err)
	return svc, users, blacklist
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewAuthService(newMemUserStore(), newMemBlacklist(), config.AuthConfig{
		JWTAccessTTL:  "30m",
		JWTRefreshTTL: "168h",
	})
	assert.ErrorIs(t, err, ErrMisconfigured)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123", nil)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "otherpass99", nil)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Len(t, users.users, 1, "failed registration must not mutate state")
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "al", "secret123", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, "alice", "short", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_SameErrorForMissingUserAndWrongPassword(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "realuser", "secret123", nil)
	require.NoError(t, err)

	_, errNoUser := svc.Login(ctx, "nouser", "anything")
	_, errWrongPass := svc.Login(ctx, "realuser", "wrongpass")

	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errNoUser, errWrongPass)
}

func TestIssueSession_PairSharesSubject(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService(t)

	pair, err := svc.IssueSession(&model.User{ID: 7, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	access, err := svc.Codec().Parse(pair.AccessToken)
	require.NoError(t, err)
	refresh, err := svc.Codec().Parse(pair.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, "7", access.Subject)
	assert.Equal(t, "7", refresh.Subject)
	assert.Equal(t, TokenKindAccess, access.Kind)
	assert.Equal(t, TokenKindRefresh, refresh.Kind)
	assert.True(t, refresh.ExpiresAt.After(access.ExpiresAt), "refresh token must outlive access token")
}

func TestAuthFlow_RegisterLoginMeLogout(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	email := "a@x.com"
	user, err := svc.Register(ctx, "alice", "secret123", &email)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	pair, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	resolved, err := svc.CurrentUser(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	require.NoError(t, svc.Logout(ctx, pair.AccessToken, user.ID))

	_, err = svc.CurrentUser(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Revocation wins even though the token itself is still unexpired.
	_, err = svc.Codec().Parse(pair.AccessToken)
	assert.NoError(t, err)
}

func TestLogout_Idempotent(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123", nil)
	require.NoError(t, err)
	pair, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.AccessToken, 1))
	require.NoError(t, svc.Logout(ctx, pair.AccessToken, 1), "second logout of the same token must succeed")
}

func TestLogout_MalformedTokenStillRecorded(t *testing.T) {
	t.Parallel()
	svc, _, blacklist := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx, "not-a-jwt", 1))

	revoked, err := blacklist.IsTokenBlacklisted(ctx, "not-a-jwt")
	require.NoError(t, err)
	assert.True(t, revoked, "malformed token must still be blocked from reuse")
}

func TestCurrentUser_ExpiredToken(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123", nil)
	require.NoError(t, err)

	expired, err := svc.Codec().Issue("1", TokenKindAccess, -1*time.Second)
	require.NoError(t, err)

	_, err = svc.CurrentUser(ctx, expired)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCurrentUser_OrphanedSubject(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	// Valid token whose subject no longer resolves to a user.
	tok, err := svc.Codec().Issue("999", TokenKindAccess, time.Hour)
	require.NoError(t, err)

	_, err = svc.CurrentUser(ctx, tok)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

package db

import (
	"context"
	"time"
)

// InsertBlacklist records a revoked token. The token column is UNIQUE;
// a duplicate insert returns a unique-violation the caller may treat as
// already-revoked.
func (db *Postgres) InsertBlacklist(ctx context.Context, token string, userID int64, expiredAt *time.Time) error {
	query := `
		INSERT INTO token_blacklist (token, user_id, expired_at, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := db.Pool.Exec(ctx, query, token, userID, expiredAt)
	return err
}

func (db *Postgres) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM token_blacklist WHERE token = $1)`
	var revoked bool
	if err := db.Pool.QueryRow(ctx, query, token).Scan(&revoked); err != nil {
		return false, err
	}
	return revoked, nil
}

// DeleteExpiredBlacklist removes entries whose recorded expiry has
// passed. Entries without a recorded expiry are kept forever.
func (db *Postgres) DeleteExpiredBlacklist(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM token_blacklist WHERE expired_at IS NOT NULL AND expired_at < $1`
	tag, err := db.Pool.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

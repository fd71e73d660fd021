package db

import "context"

// EnsureSchema creates all tables on startup. Statements are idempotent
// so repeated boots are safe.
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS token_blacklist (
			id BIGSERIAL PRIMARY KEY,
			token TEXT NOT NULL UNIQUE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expired_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS token_blacklist_user_id_idx ON token_blacklist(user_id)`,
		`
		CREATE TABLE IF NOT EXISTS diaries (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS diaries_user_id_idx ON diaries(user_id)`,
		`
		CREATE TABLE IF NOT EXISTS quotes (
			id BIGSERIAL PRIMARY KEY,
			content TEXT NOT NULL UNIQUE,
			author TEXT NOT NULL DEFAULT ''
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS bookmarks (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			quote_id BIGINT NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, quote_id)
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS questions (
			id BIGSERIAL PRIMARY KEY,
			content TEXT NOT NULL
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS user_questions (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			question_id BIGINT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
			assigned_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, question_id)
		)
		`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

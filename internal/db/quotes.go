package db

import (
	"context"

	"github.com/my-diary/backend/internal/model"
)

// InsertQuote adds a quote unless one with the same content already
// exists. Returns true when a row was inserted.
func (db *Postgres) InsertQuote(ctx context.Context, content, author string) (bool, error) {
	query := `
		INSERT INTO quotes (content, author)
		VALUES ($1, $2)
		ON CONFLICT (content) DO NOTHING
	`
	tag, err := db.Pool.Exec(ctx, query, content, author)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *Postgres) ListQuotes(ctx context.Context) ([]model.Quote, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, content, author FROM quotes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := []model.Quote{}
	for rows.Next() {
		var quote model.Quote
		if err := rows.Scan(&quote.ID, &quote.Content, &quote.Author); err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, rows.Err()
}

func (db *Postgres) GetRandomQuote(ctx context.Context) (*model.Quote, error) {
	query := `SELECT id, content, author FROM quotes ORDER BY RANDOM() LIMIT 1`
	var quote model.Quote
	if err := db.Pool.QueryRow(ctx, query).Scan(&quote.ID, &quote.Content, &quote.Author); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (db *Postgres) GetQuoteByID(ctx context.Context, quoteID int64) (*model.Quote, error) {
	query := `SELECT id, content, author FROM quotes WHERE id = $1`
	var quote model.Quote
	if err := db.Pool.QueryRow(ctx, query, quoteID).Scan(&quote.ID, &quote.Content, &quote.Author); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (db *Postgres) CountQuotes(ctx context.Context) (int64, error) {
	var count int64
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (db *Postgres) InsertBookmark(ctx context.Context, userID, quoteID int64) (*model.Bookmark, error) {
	query := `
		INSERT INTO bookmarks (user_id, quote_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, user_id, quote_id, created_at
	`
	var bookmark model.Bookmark
	err := db.Pool.QueryRow(ctx, query, userID, quoteID).Scan(
		&bookmark.ID,
		&bookmark.UserID,
		&bookmark.QuoteID,
		&bookmark.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (db *Postgres) ListBookmarksByUser(ctx context.Context, userID int64) ([]model.BookmarkWithQuote, error) {
	query := `
		SELECT b.id, b.user_id, b.quote_id, b.created_at, q.id, q.content, q.author
		FROM bookmarks b
		JOIN quotes q ON q.id = b.quote_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookmarks := []model.BookmarkWithQuote{}
	for rows.Next() {
		var bm model.BookmarkWithQuote
		if err := rows.Scan(
			&bm.ID,
			&bm.UserID,
			&bm.QuoteID,
			&bm.CreatedAt,
			&bm.Quote.ID,
			&bm.Quote.Content,
			&bm.Quote.Author,
		); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bm)
	}
	return bookmarks, rows.Err()
}

func (db *Postgres) DeleteBookmark(ctx context.Context, userID, quoteID int64) (int64, error) {
	query := `DELETE FROM bookmarks WHERE user_id = $1 AND quote_id = $2`
	tag, err := db.Pool.Exec(ctx, query, userID, quoteID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

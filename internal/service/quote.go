package service

import (
	"context"
	"fmt"

	"github.com/my-diary/backend/internal/db"
	"github.com/my-diary/backend/internal/logging"
	"github.com/my-diary/backend/internal/model"
)

type QuoteStore interface {
	InsertQuote(ctx context.Context, content, author string) (bool, error)
	ListQuotes(ctx context.Context) ([]model.Quote, error)
	GetRandomQuote(ctx context.Context) (*model.Quote, error)
	GetQuoteByID(ctx context.Context, quoteID int64) (*model.Quote, error)
	CountQuotes(ctx context.Context) (int64, error)
	InsertBookmark(ctx context.Context, userID, quoteID int64) (*model.Bookmark, error)
	ListBookmarksByUser(ctx context.Context, userID int64) ([]model.BookmarkWithQuote, error)
	DeleteBookmark(ctx context.Context, userID, quoteID int64) (int64, error)
}

// QuoteSource fetches one page of quotes from the upstream site.
type QuoteSource interface {
	FetchPage(ctx context.Context, page int) ([]model.ScrapedQuote, error)
}

type QuoteService struct {
	store  QuoteStore
	source QuoteSource
	log    logging.Logger
}

func NewQuoteService(store QuoteStore, source QuoteSource, log logging.Logger) *QuoteService {
	return &QuoteService{store: store, source: source, log: log}
}

func (s *QuoteService) List(ctx context.Context) ([]model.Quote, error) {
	return s.store.ListQuotes(ctx)
}

func (s *QuoteService) Random(ctx context.Context) (*model.Quote, error) {
	quote, err := s.store.GetRandomQuote(ctx)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: no quotes available", ErrNotFound)
		}
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) AddBookmark(ctx context.Context, userID, quoteID int64) (*model.Bookmark, error) {
	if _, err := s.store.GetQuoteByID(ctx, quoteID); err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: quote not found", ErrNotFound)
		}
		return nil, err
	}

	bookmark, err := s.store.InsertBookmark(ctx, userID, quoteID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: bookmark already exists", ErrConflict)
		}
		return nil, err
	}
	return bookmark, nil
}

func (s *QuoteService) ListBookmarks(ctx context.Context, userID int64) ([]model.BookmarkWithQuote, error) {
	return s.store.ListBookmarksByUser(ctx, userID)
}

func (s *QuoteService) RemoveBookmark(ctx context.Context, userID, quoteID int64) error {
	deleted, err := s.store.DeleteBookmark(ctx, userID, quoteID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: bookmark not found", ErrNotFound)
	}
	return nil
}

// Scrape pulls up to pages pages from the source and folds new quotes
// into the catalog. A failed page is logged and skipped; the run keeps
// going.
func (s *QuoteService) Scrape(ctx context.Context, pages int) (*model.ScrapeResponse, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: no quote source configured", ErrMisconfigured)
	}

	saved := 0
	for page := 1; page <= pages; page++ {
		scraped, err := s.source.FetchPage(ctx, page)
		if err != nil {
			s.log.Warn(ctx, "quote page fetch failed", "page", page, "error", err)
			continue
		}

		for _, q := range scraped {
			inserted, err := s.store.InsertQuote(ctx, q.Content, q.Author)
			if err != nil {
				return nil, err
			}
			if inserted {
				saved++
			}
		}
	}

	total, err := s.store.CountQuotes(ctx)
	if err != nil {
		return nil, err
	}

	return &model.ScrapeResponse{
		Message:     fmt.Sprintf("Scraping completed. Saved %d new quotes.", saved),
		SavedCount:  saved,
		TotalQuotes: total,
	}, nil
}

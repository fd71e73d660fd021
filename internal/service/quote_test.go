package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/my-diary/backend/internal/logging"
	"github.com/my-diary/backend/internal/model"
)

type memQuoteStore struct {
	quotes    map[int64]*model.Quote
	byContent map[string]int64
	bookmarks map[string]*model.Bookmark
	nextQuote int64
	nextMark  int64
}

func newMemQuoteStore() *memQuoteStore {
	return &memQuoteStore{
		quotes:    map[int64]*model.Quote{},
		byContent: map[string]int64{},
		bookmarks: map[string]*model.Bookmark{},
	}
}

func bookmarkKey(userID, quoteID int64) string {
	return fmt.Sprintf("%d:%d", userID, quoteID)
}

func (s *memQuoteStore) InsertQuote(_ context.Context, content, author string) (bool, error) {
	if _, ok := s.byContent[content]; ok {
		return false, nil
	}
	s.nextQuote++
	s.quotes[s.nextQuote] = &model.Quote{ID: s.nextQuote, Content: content, Author: author}
	s.byContent[content] = s.nextQuote
	return true, nil
}

func (s *memQuoteStore) ListQuotes(_ context.Context) ([]model.Quote, error) {
	out := []model.Quote{}
	for _, q := range s.quotes {
		out = append(out, *q)
	}
	return out, nil
}

func (s *memQuoteStore) GetRandomQuote(_ context.Context) (*model.Quote, error) {
	for _, q := range s.quotes {
		copied := *q
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *memQuoteStore) GetQuoteByID(_ context.Context, quoteID int64) (*model.Quote, error) {
	if q, ok := s.quotes[quoteID]; ok {
		copied := *q
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *memQuoteStore) CountQuotes(_ context.Context) (int64, error) {
	return int64(len(s.quotes)), nil
}

func (s *memQuoteStore) InsertBookmark(_ context.Context, userID, quoteID int64) (*model.Bookmark, error) {
	key := bookmarkKey(userID, quoteID)
	if _, ok := s.bookmarks[key]; ok {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	s.nextMark++
	bm := &model.Bookmark{ID: s.nextMark, UserID: userID, QuoteID: quoteID, CreatedAt: time.Now()}
	s.bookmarks[key] = bm
	return bm, nil
}

func (s *memQuoteStore) ListBookmarksByUser(_ context.Context, userID int64) ([]model.BookmarkWithQuote, error) {
	out := []model.BookmarkWithQuote{}
	for _, bm := range s.bookmarks {
		if bm.UserID != userID {
			continue
		}
		out = append(out, model.BookmarkWithQuote{Bookmark: *bm, Quote: *s.quotes[bm.QuoteID]})
	}
	return out, nil
}

func (s *memQuoteStore) DeleteBookmark(_ context.Context, userID, quoteID int64) (int64, error) {
	key := bookmarkKey(userID, quoteID)
	if _, ok := s.bookmarks[key]; !ok {
		return 0, nil
	}
	delete(s.bookmarks, key)
	return 1, nil
}

type fakeQuoteSource struct {
	pages map[int][]model.ScrapedQuote
	fail  map[int]bool
}

func (f *fakeQuoteSource) FetchPage(_ context.Context, page int) ([]model.ScrapedQuote, error) {
	if f.fail[page] {
		return nil, errors.New("connection reset")
	}
	return f.pages[page], nil
}

func discardLogger() logging.Logger {
	return logging.New(io.Discard)
}

func TestQuoteService_RandomEmptyCatalog(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(newMemQuoteStore(), nil, discardLogger())
	if _, err := svc.Random(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty catalog, got %v", err)
	}
}

func TestQuoteService_BookmarkLifecycle(t *testing.T) {
	t.Parallel()

	store := newMemQuoteStore()
	svc := NewQuoteService(store, nil, discardLogger())
	ctx := context.Background()

	if _, err := store.InsertQuote(ctx, "carpe diem", "Horace"); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	if _, err := svc.AddBookmark(ctx, 1, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing quote, got %v", err)
	}

	if _, err := svc.AddBookmark(ctx, 1, 1); err != nil {
		t.Fatalf("AddBookmark error: %v", err)
	}
	if _, err := svc.AddBookmark(ctx, 1, 1); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate bookmark, got %v", err)
	}

	bookmarks, err := svc.ListBookmarks(ctx, 1)
	if err != nil {
		t.Fatalf("ListBookmarks error: %v", err)
	}
	if len(bookmarks) != 1 || bookmarks[0].Quote.Content != "carpe diem" {
		t.Fatalf("unexpected bookmarks: %+v", bookmarks)
	}

	if err := svc.RemoveBookmark(ctx, 1, 1); err != nil {
		t.Fatalf("RemoveBookmark error: %v", err)
	}
	if err := svc.RemoveBookmark(ctx, 1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound removing absent bookmark, got %v", err)
	}
}

func TestQuoteService_ScrapeDedupesAndSkipsFailedPages(t *testing.T) {
	t.Parallel()

	store := newMemQuoteStore()
	source := &fakeQuoteSource{
		pages: map[int][]model.ScrapedQuote{
			1: {
				{Content: "carpe diem", Author: "Horace"},
				{Content: "know thyself", Author: "Socrates"},
			},
			3: {
				{Content: "carpe diem", Author: "Horace"}, // duplicate across pages
				{Content: "memento mori", Author: ""},
			},
		},
		fail: map[int]bool{2: true},
	}
	svc := NewQuoteService(store, source, discardLogger())

	result, err := svc.Scrape(context.Background(), 3)
	if err != nil {
		t.Fatalf("Scrape error: %v", err)
	}
	if result.SavedCount != 3 {
		t.Fatalf("saved count mismatch: got %d want 3", result.SavedCount)
	}
	if result.TotalQuotes != 3 {
		t.Fatalf("total mismatch: got %d want 3", result.TotalQuotes)
	}
}

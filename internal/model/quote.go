package model

import "time"

type Quote struct {
	ID      int64
	Content string
	Author  string
}

type QuoteResponse struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

func (q *Quote) ToResponse() QuoteResponse {
	return QuoteResponse{ID: q.ID, Content: q.Content, Author: q.Author}
}

type Bookmark struct {
	ID        int64
	UserID    int64
	QuoteID   int64
	CreatedAt time.Time
}

// BookmarkWithQuote joins a bookmark with the quote it points at, so
// listing does not need a second round trip per row.
type BookmarkWithQuote struct {
	Bookmark
	Quote Quote
}

type BookmarkCreatedResponse struct {
	ID        int64     `json:"id"`
	QuoteID   int64     `json:"quoteId"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookmarkResponse struct {
	ID        int64         `json:"id"`
	Quote     QuoteResponse `json:"quote"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ScrapedQuote is a quote as extracted from the source site, before
// it is deduplicated into the catalog.
type ScrapedQuote struct {
	Content string
	Author  string
}

type ScrapeResponse struct {
	Message     string `json:"message"`
	SavedCount  int    `json:"savedCount"`
	TotalQuotes int64  `json:"totalQuotes"`
}

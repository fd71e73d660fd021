package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSplitQuoteCell(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantContent string
		wantAuthor  string
		wantOK      bool
	}{
		{
			name:        "content-and-author",
			input:       " Carpe diem - Horace ",
			wantContent: "Carpe diem",
			wantAuthor:  "Horace",
			wantOK:      true,
		},
		{
			name:        "extra-dashes-stay-in-author",
			input:       "Less is more - Mies - van der Rohe",
			wantContent: "Less is more",
			wantAuthor:  "Mies - van der Rohe",
			wantOK:      true,
		},
		{
			name:   "no-separator",
			input:  "just some text",
			wantOK: false,
		},
		{
			name:   "empty-content",
			input:  " - Anonymous",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, author, ok := splitQuoteCell(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if content != tt.wantContent || author != tt.wantAuthor {
				t.Fatalf("got (%q, %q), want (%q, %q)", content, author, tt.wantContent, tt.wantAuthor)
			}
		})
	}
}

func TestFetchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`
			<table><tbody>
				<tr><td colspan='5'>Carpe diem - Horace</td></tr>
				<tr><td>ignored row</td></tr>
				<tr><td colspan='5'>malformed cell without separator</td></tr>
				<tr><td colspan='5'>Know thyself - Socrates</td></tr>
			</tbody></table>
		`))
	}))
	defer srv.Close()

	scraper := NewQuoteScraper(srv.URL)

	quotes, err := scraper.FetchPage(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchPage error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d: %+v", len(quotes), quotes)
	}
	if quotes[0].Content != "Carpe diem" || quotes[0].Author != "Horace" {
		t.Fatalf("unexpected first quote: %+v", quotes[0])
	}

	if _, err := scraper.FetchPage(context.Background(), 2); err == nil {
		t.Fatal("expected error for non-200 page")
	}
}

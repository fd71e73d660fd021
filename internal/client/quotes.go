// 명언 사이트 스크래핑 클라이언트
//
// 환경변수:
//   - QUOTE_SCRAPER_URL: 스크래핑 대상 목록 페이지 (default: https://saramro.com/quotes)
//   - QUOTE_SCRAPER_PAGES: 페이지 수 (default: 5)

package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/my-diary/backend/internal/model"
)

type QuoteScraper struct {
	baseURL    string
	httpClient *http.Client
}

func NewQuoteScraper(baseURL string) *QuoteScraper {
	return &QuoteScraper{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchPage downloads one listing page and extracts its quotes. Rows
// that do not split into "content - author" are skipped.
func (c *QuoteScraper) FetchPage(ctx context.Context, page int) ([]model.ScrapedQuote, error) {
	url := fmt.Sprintf("%s?page=%d", c.baseURL, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote page %d returned status %d", page, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse quote page %d: %w", page, err)
	}

	quotes := []model.ScrapedQuote{}
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cell := row.Find("td[colspan='5']")
		if cell.Length() == 0 {
			return
		}

		// 셀 텍스트 형식: "명언 내용 - 작자"
		content, author, ok := splitQuoteCell(cell.Text())
		if !ok {
			return
		}
		quotes = append(quotes, model.ScrapedQuote{Content: content, Author: author})
	})

	return quotes, nil
}

func splitQuoteCell(text string) (content, author string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(text), "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	content = strings.TrimSpace(parts[0])
	author = strings.TrimSpace(parts[1])
	if content == "" {
		return "", "", false
	}
	return content, author, true
}

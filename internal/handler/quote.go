package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/my-diary/backend/internal/model"
	"github.com/my-diary/backend/internal/service"
)

type QuoteHandler struct {
	svc          *service.QuoteService
	scraperPages int
}

func NewQuoteHandler(svc *service.QuoteService, scraperPages int) *QuoteHandler {
	return &QuoteHandler{svc: svc, scraperPages: scraperPages}
}

// List godoc
// @Summary List all quotes
// @Tags quote
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.QuoteResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]model.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, quotes[i].ToResponse())
	}
	c.JSON(http.StatusOK, out)
}

// Random godoc
// @Summary Get a random quote
// @Tags quote
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.QuoteResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) Random(c *gin.Context) {
	quote, err := h.svc.Random(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote.ToResponse())
}

// Scrape godoc
// @Summary Scrape the quote site into the catalog
// @Tags quote
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ScrapeResponse
// @Router /api/v1/quotes/scrape [post]
func (h *QuoteHandler) Scrape(c *gin.Context) {
	result, err := h.svc.Scrape(c.Request.Context(), h.scraperPages)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddBookmark godoc
// @Summary Bookmark a quote
// @Tags quote
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quote ID"
// @Success 201 {object} model.BookmarkCreatedResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /api/v1/quotes/{id}/bookmark [post]
func (h *QuoteHandler) AddBookmark(c *gin.Context) {
	user := GetAuthUser(c)
	quoteID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	bookmark, err := h.svc.AddBookmark(c.Request.Context(), user.ID, quoteID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.BookmarkCreatedResponse{
		ID:        bookmark.ID,
		QuoteID:   bookmark.QuoteID,
		CreatedAt: bookmark.CreatedAt,
	})
}

// ListBookmarks godoc
// @Summary List the caller's bookmarked quotes
// @Tags quote
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.BookmarkResponse
// @Router /api/v1/bookmarks [get]
func (h *QuoteHandler) ListBookmarks(c *gin.Context) {
	user := GetAuthUser(c)
	bookmarks, err := h.svc.ListBookmarks(c.Request.Context(), user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	out := make([]model.BookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		out = append(out, model.BookmarkResponse{
			ID:        bookmarks[i].ID,
			Quote:     bookmarks[i].Quote.ToResponse(),
			CreatedAt: bookmarks[i].CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// RemoveBookmark godoc
// @Summary Remove a bookmark
// @Tags quote
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quote ID"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/quotes/{id}/bookmark [delete]
func (h *QuoteHandler) RemoveBookmark(c *gin.Context) {
	user := GetAuthUser(c)
	quoteID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := h.svc.RemoveBookmark(c.Request.Context(), user.ID, quoteID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}

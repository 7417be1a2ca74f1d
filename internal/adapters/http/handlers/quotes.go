package handlers

import (
	"errors"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/dto"
	"github.com/jsamuelsen/dailyquote/internal/app"
	"github.com/jsamuelsen/dailyquote/internal/domain"
)

// QuoteHandler handles quote browsing, search and favorites.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// quoteID parses the :id path parameter.
func quoteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		dto.HandleErrorCode(c, dto.ErrorCodeBadRequest, "quote id must be a positive integer")
		return 0, false
	}

	return id, true
}

// ListQuotes handles GET /api/v1/quotes.
// Quotes are paged newest first; the cursor carries the last id returned.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var query dto.ListQuotesQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	quotes := h.service.ListQuotes(c.Request.Context(), query.Filter())

	before, err := query.BeforeID()
	switch {
	case errors.Is(err, dto.ErrNoCursor):
	case err != nil:
		dto.HandleErrorCode(c, dto.ErrorCodeBadRequest, "invalid cursor")
		return
	default:
		start := slices.IndexFunc(quotes, func(q domain.Quote) bool { return q.ID < before })
		if start < 0 {
			start = len(quotes)
		}

		quotes = quotes[start:]
	}

	limit := query.GetLimit()
	page := dto.NewQuoteResponses(quotes[:min(len(quotes), limit+1)])

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(page, limit, dto.QuoteCursor))
}

// GetQuote handles GET /api/v1/quotes/:id.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	quote, err := h.service.GetQuote(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// CreateQuote handles POST /api/v1/quotes.
// It answers 201 for a new quote and 200 with the stored copy for a duplicate.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	quote, created, err := h.service.AddQuote(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, dto.NewQuoteResponse(quote))
}

// RandomQuotes handles GET /api/v1/quotes/random.
// Without count a single quote is returned; with count an array.
func (h *QuoteHandler) RandomQuotes(c *gin.Context) {
	var query dto.RandomQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	ctx := c.Request.Context()

	if query.Count > 0 {
		c.JSON(http.StatusOK, dto.NewQuoteResponses(h.service.RandomQuotes(ctx, query.Count, query.Exclude)))
		return
	}

	var quote *domain.Quote

	switch {
	case query.Category != "":
		quote = h.service.RandomQuoteFromCategory(ctx, query.Category, query.Exclude)
	case query.Author != "":
		quote = h.service.RandomQuoteFromAuthor(ctx, query.Author, query.Exclude)
	default:
		quote = h.service.RandomQuoteExcluding(ctx, query.Exclude)
	}

	if quote == nil {
		dto.HandleError(c, domain.NewNotFoundError("quote", ""))
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(*quote))
}

// SearchQuotes handles GET /api/v1/quotes/search?q=.
// A blank term yields an empty list.
func (h *QuoteHandler) SearchQuotes(c *gin.Context) {
	var query dto.SearchQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(h.service.SearchQuotes(c.Request.Context(), query.Q)))
}

// Favorites handles GET /api/v1/favorites.
func (h *QuoteHandler) Favorites(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewQuoteResponses(h.service.Favorites(c.Request.Context())))
}

// SetFavorite handles PUT /api/v1/quotes/:id/favorite.
func (h *QuoteHandler) SetFavorite(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	var req dto.FavoriteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	quote, err := h.service.SetFavorite(c.Request.Context(), id, *req.IsFavorite)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// ToggleFavorite handles POST /api/v1/quotes/:id/favorite/toggle.
func (h *QuoteHandler) ToggleFavorite(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	quote, err := h.service.GetQuote(ctx, id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	favorite, err := h.service.ToggleFavorite(ctx, quote)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FavoriteResponse{ID: id, IsFavorite: favorite})
}

// Categories handles GET /api/v1/categories.
func (h *QuoteHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CategoriesWithCount(c.Request.Context()))
}

// QuotesByCategory handles GET /api/v1/categories/:category/quotes.
func (h *QuoteHandler) QuotesByCategory(c *gin.Context) {
	quotes := h.service.QuotesByCategory(c.Request.Context(), c.Param("category"))
	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// Authors handles GET /api/v1/authors.
func (h *QuoteHandler) Authors(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.AuthorsWithCount(c.Request.Context()))
}

// QuotesByAuthor handles GET /api/v1/authors/:author/quotes.
func (h *QuoteHandler) QuotesByAuthor(c *gin.Context) {
	quotes := h.service.QuotesByAuthor(c.Request.Context(), c.Param("author"))
	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// SuggestAuthors handles GET /api/v1/authors/suggest?q=.
func (h *QuoteHandler) SuggestAuthors(c *gin.Context) {
	var query dto.SuggestQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	limit := query.Limit
	if limit == 0 {
		limit = app.DefaultSuggestLimit
	}

	c.JSON(http.StatusOK, h.service.SuggestAuthors(c.Request.Context(), query.Q, limit))
}

// Stats handles GET /api/v1/stats.
func (h *QuoteHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.CreateQuote)
	quotes.GET("/random", h.RandomQuotes)
	quotes.GET("/search", h.SearchQuotes)
	quotes.GET("/:id", h.GetQuote)
	quotes.PUT("/:id/favorite", h.SetFavorite)
	quotes.POST("/:id/favorite/toggle", h.ToggleFavorite)

	rg.GET("/favorites", h.Favorites)
	rg.GET("/categories", h.Categories)
	rg.GET("/categories/:category/quotes", h.QuotesByCategory)
	rg.GET("/authors", h.Authors)
	rg.GET("/authors/suggest", h.SuggestAuthors)
	rg.GET("/authors/:author/quotes", h.QuotesByAuthor)
	rg.GET("/stats", h.Stats)
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-quote/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-quote/internal/domain"
)

// QuoteProvider is the part of app.QuoteProvider the HTTP surface uses.
type QuoteProvider interface {
	LoadQuote(ctx context.Context, forceNew bool) (domain.Result, error)
	ShareURLFor(q domain.Quote, pageURL string) string
}

// QuoteHandler serves today's quote over HTTP.
type QuoteHandler struct {
	provider QuoteProvider
	pageURL  string
}

// NewQuoteHandler creates a quote handler. pageURL is attached to share
// links unless a request overrides it.
func NewQuoteHandler(provider QuoteProvider, pageURL string) *QuoteHandler {
	return &QuoteHandler{
		provider: provider,
		pageURL:  pageURL,
	}
}

// GetToday handles GET /api/v1/quote/today.
// Returns the stored quote for today, fetching one on the first call of the day.
//
// @Summary Get today's quote
// @Tags quote
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/quote/today [get]
func (h *QuoteHandler) GetToday(c *gin.Context) {
	h.load(c, false)
}

// Refresh handles POST /api/v1/quote/refresh.
// Fetches a new quote and replaces today's stored one. A refresh that loses
// to a newer one answers 409.
//
// @Summary Replace today's quote
// @Tags quote
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/quote/refresh [post]
func (h *QuoteHandler) Refresh(c *gin.Context) {
	h.load(c, true)
}

func (h *QuoteHandler) load(c *gin.Context, forceNew bool) {
	res, err := h.provider.LoadQuote(c.Request.Context(), forceNew)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(res))
}

// GetShare handles GET /api/v1/quote/share.
// Returns the share text and the social intent URL for today's quote.
//
// @Summary Share link for today's quote
// @Tags quote
// @Produce json
// @Param page_url query string false "Page URL attached to the share"
// @Success 200 {object} dto.ShareResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quote/share [get]
func (h *QuoteHandler) GetShare(c *gin.Context) {
	var req dto.ShareRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		if fields := dto.ValidationErrors(err); len(fields) > 0 {
			dto.RespondWithValidationErrors(c, fields)
			return
		}

		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, err.Error())

		return
	}

	res, err := h.provider.LoadQuote(c.Request.Context(), false)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	pageURL := h.pageURL
	if req.PageURL != "" {
		pageURL = req.PageURL
	}

	c.JSON(http.StatusOK, dto.ShareResponse{
		Text: res.Quote.Format(),
		URL:  h.provider.ShareURLFor(res.Quote, pageURL),
	})
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quote := rg.Group("/quote")
	quote.GET("/today", h.GetToday)
	quote.POST("/refresh", h.Refresh)
	quote.GET("/share", h.GetShare)
}

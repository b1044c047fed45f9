package dto

import (
	"strings"

	"github.com/jsamuelsen/daily-quote/internal/domain"
)

// QuoteResponse is the HTTP representation of a resolved quote.
type QuoteResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`

	// Text is the single-line form used for copying and sharing.
	Text string `json:"text"`

	// Source is one of cache, network or fallback.
	Source string `json:"source"`

	// Date is the local calendar day the quote belongs to (YYYY-MM-DD).
	Date string `json:"date"`
}

// NewQuoteResponse converts a provider result.
func NewQuoteResponse(res domain.Result) QuoteResponse {
	return QuoteResponse{
		Content: res.Quote.Content,
		Author:  res.Quote.Author,
		Text:    res.Quote.Format(),
		Source:  string(res.Source),
		Date:    strings.TrimPrefix(res.Key, domain.CacheKeyPrefix),
	}
}

// ShareRequest holds the optional query parameters of the share endpoint.
type ShareRequest struct {
	// PageURL overrides the configured page URL attached to the share.
	PageURL string `form:"page_url" validate:"omitempty,weburl,max=2048"`
}

// ShareResponse carries the share text and the social intent URL.
type ShareResponse struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"time"
)

// DefaultAuthor is used when the quote source does not name an author.
const DefaultAuthor = "Unknown"

// CacheKeyPrefix prefixes every date-scoped cache key.
const CacheKeyPrefix = "dq:"

// cacheKeyLayout formats the local calendar date part of a cache key.
const cacheKeyLayout = "2006-01-02"

// Quote represents a quotation with its author.
// This is a domain entity - it has no knowledge of external systems.
// The JSON form is the persisted cache value.
type Quote struct {
	// Content is the text of the quote.
	Content string `json:"content"`

	// Author is who said or wrote the quote.
	Author string `json:"author"`
}

// NewQuote builds a quote, defaulting a blank author to DefaultAuthor.
func NewQuote(content, author string) Quote {
	if strings.TrimSpace(author) == "" {
		author = DefaultAuthor
	}

	return Quote{Content: content, Author: author}
}

// Text returns the quote content wrapped in typographic quotation marks.
func (q Quote) Text() string {
	return "“" + q.Content + "”"
}

// Attribution returns the author line as displayed under the quote.
func (q Quote) Attribution() string {
	return "— " + q.Author
}

// Format returns the single-line form used for the clipboard and sharing.
func (q Quote) Format() string {
	return q.Text() + " " + q.Attribution()
}

// IsZero reports whether the quote carries no content.
func (q Quote) IsZero() bool {
	return q.Content == "" && q.Author == ""
}

// CacheKey returns the cache key for the calendar day containing t,
// evaluated in t's location.
func CacheKey(t time.Time) string {
	return CacheKeyPrefix + t.Format(cacheKeyLayout)
}

// Source identifies where a rendered quote came from.
type Source string

const (
	// SourceCache means the quote was already stored for today.
	SourceCache Source = "cache"

	// SourceNetwork means the quote was fetched from the quote API.
	SourceNetwork Source = "network"

	// SourceFallback means the fetch failed and a built-in quote was used.
	SourceFallback Source = "fallback"
)

// Result describes the outcome of resolving today's quote.
type Result struct {
	// Quote is the quote that was rendered.
	Quote Quote

	// Source is where the quote came from.
	Source Source

	// Key is the cache key the quote is stored under.
	Key string

	// FetchErr is the swallowed fetch failure when Source is SourceFallback.
	FetchErr error
}

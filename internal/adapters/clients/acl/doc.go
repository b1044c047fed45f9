// Package acl is the Anti-Corruption Layer between the quote API and the domain.
//
// The quote API's JSON shape, status codes and error bodies stay inside this
// package. Callers only ever see [domain.Quote] and domain errors:
//
//   - 404 Not Found → [domain.ErrNotFound]
//   - other 4xx, malformed or empty body → [domain.ErrValidation]
//   - 429, 5xx, network, timeout, open circuit → [domain.ErrUnavailable]
//
// The quote provider treats all of them as "fetch failed" and falls back
// to the built-in list, so the distinction only matters for logs.
package acl

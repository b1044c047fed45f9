// Package clients provides the instrumented HTTP client used to reach the
// quote API.
package clients

import "errors"

// Transport-level failures. The acl package turns them into domain errors;
// nothing above it should match on these.
var (
	// ErrCircuitOpen means the call was refused locally: the quote API
	// failed too often recently and the breaker has not cooled down yet.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last attempt's error once every
	// configured attempt has failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")

	// ErrRequestCancelled wraps the error of a request the caller gave up
	// on. It is not held against the quote API by the breaker.
	ErrRequestCancelled = errors.New("request cancelled")
)

package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Attribute keys whose values never reach a log sink.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"apiKey", "apikey", "api_key",
	"accessToken", "access_token",
	"refreshToken", "refresh_token",
	"authorization", "auth", "bearer",
	"cookie",
	"session",
	"credential", "credentials",
	"privateKey", "private_key",
	"secretKey", "secret_key",
}

var sensitivePrefixes = []string{"secret", "private"}

// Values redacted whatever key they are logged under. The quote API base URL
// and the share page URL come from config and may carry credentials.
var sensitiveValues = []*regexp.Regexp{
	// JWT
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),
	// Authorization header values
	regexp.MustCompile(`(?i)^(bearer|basic)\s+\S+`),
	// URL with user:password@
	regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://[^/@\s]+:[^/@\s]+@`),
	// URL with a credential in the query string
	regexp.MustCompile(`(?i)[?&](token|key|api_key|apikey|access_token|sig|signature)=`),
}

// DefaultRedactOptions returns the masq options every handler built by this
// package applies. Append to it for more keys or types:
//
//	opts := append(logging.DefaultRedactOptions(), masq.WithFieldName("shareSecret"))
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))

	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}

	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return opts
}

// NewReplaceAttr returns a slog ReplaceAttr hook applying
// DefaultRedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}

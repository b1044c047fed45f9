package domain

import "strings"

// DefaultIntentURL is the social compose endpoint used when nothing else is configured.
const DefaultIntentURL = "https://twitter.com/intent/tweet"

// IntentURL builds the social compose URL with text pre-filled.
// pageURL is appended as the url parameter when non-empty.
func IntentURL(base, text, pageURL string) string {
	if base == "" {
		base = DefaultIntentURL
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	u := base + sep + "text=" + EncodeURIComponent(text)
	if pageURL != "" {
		u += "&url=" + EncodeURIComponent(pageURL)
	}

	return u
}

// EncodeURIComponent percent-encodes s as UTF-8, leaving only
// A-Z a-z 0-9 and - _ . ! ~ * ' ( ) unescaped.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)

	for i := range len(s) {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	return strings.IndexByte("-_.!~*'()", c) >= 0
}

package domain

// fallbackQuotes is served when the quote API cannot be reached.
var fallbackQuotes = [...]Quote{
	{Content: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Content: "It always seems impossible until it’s done.", Author: "Nelson Mandela"},
	{Content: "You miss 100% of the shots you don’t take.", Author: "Wayne Gretzky"},
	{Content: "What we think, we become.", Author: "Buddha"},
	{Content: "Well begun is half done.", Author: "Aristotle"},
}

// FallbackQuote returns the fallback at index i modulo the list length.
// Negative indexes are folded into range.
func FallbackQuote(i int) Quote {
	n := len(fallbackQuotes)
	i %= n
	if i < 0 {
		i += n
	}

	return fallbackQuotes[i]
}

// IsFallback reports whether q is one of the built-in fallback quotes.
func IsFallback(q Quote) bool {
	for _, f := range fallbackQuotes {
		if f == q {
			return true
		}
	}

	return false
}

// RandomFallback picks a fallback quote with intn, which must return a
// value in [0, n) as math/rand/v2.IntN does.
func RandomFallback(intn func(n int) int) Quote {
	return FallbackQuote(intn(len(fallbackQuotes)))
}

package desktop

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/daily-quote/internal/domain"
	"github.com/jsamuelsen/daily-quote/internal/platform/logging"
	"github.com/jsamuelsen/daily-quote/internal/ports"
)

// Sharer hands a quote to the native share capability when there is one,
// otherwise opens the social intent URL in the browser.
type Sharer struct {
	native    ports.NativeSharer
	opener    ports.URLOpener
	intentURL string
}

// NewSharer builds a Sharer. native may be nil.
func NewSharer(native ports.NativeSharer, opener ports.URLOpener, intentURL string) *Sharer {
	return &Sharer{native: native, opener: opener, intentURL: intentURL}
}

// Share implements ports.Sharer. Failures are logged, never returned.
func (s *Sharer) Share(ctx context.Context, text, pageURL string) {
	logger := logging.FromContext(ctx)

	if s.native != nil {
		// Dismissal and failure look the same; neither falls through to the intent URL.
		if err := s.native.Share(ctx, text, pageURL); err != nil {
			logger.DebugContext(ctx, "native share not completed", slog.Any("error", err))
		}
		return
	}

	if s.opener == nil {
		logger.DebugContext(ctx, "no share target available")
		return
	}

	u := domain.IntentURL(s.intentURL, text, pageURL)
	if err := s.opener.Open(ctx, u); err != nil {
		logger.WarnContext(ctx, "opening share intent failed",
			slog.String("url", u),
			slog.Any("error", err))
	}
}

package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/jsamuelsen/daily-quote/internal/domain"
)

// Printer writes rendered quotes to w. It implements ports.Display for the
// one-shot commands, where there is no screen to redraw.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// ShowLoading implements ports.Display. Output is append-only, so the
// transient state is not printed.
func (p *Printer) ShowLoading() {}

// Render implements ports.Display.
func (p *Printer) Render(q domain.Quote) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintln(p.w, FormatQuote(q))
}

// FormatQuote returns the two styled display lines for q.
func FormatQuote(q domain.Quote) string {
	return quoteStyle.Render(q.Text()) + "\n" + authorStyle.Render(q.Attribution())
}

// Println writes a muted status line.
func (p *Printer) Println(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintln(p.w, mutedStyle.Render(msg))
}

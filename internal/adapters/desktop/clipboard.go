package desktop

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("clipboard unsupported on this system")

// Clipboard writes to the system clipboard via atotto/clipboard.
type Clipboard struct {
	write       func(string) error
	unsupported bool
}

// NewClipboard returns the system clipboard adapter.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// WriteText implements ports.Clipboard.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.unsupported {
		return ErrClipboardUnsupported
	}

	return c.write(text)
}

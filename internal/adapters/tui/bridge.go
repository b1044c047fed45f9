package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen/daily-quote/internal/domain"
)

// Bridge forwards display calls to a running Bubble Tea program.
// It implements ports.Display.
type Bridge struct {
	send func(tea.Msg)
}

// NewBridge creates a bridge that sends to prog.
func NewBridge(prog *tea.Program) *Bridge {
	return &Bridge{send: prog.Send}
}

// ShowLoading implements ports.Display.
func (b *Bridge) ShowLoading() {
	b.send(loadingMsg{})
}

// Render implements ports.Display.
func (b *Bridge) Render(q domain.Quote) {
	b.send(renderMsg{quote: q})
}

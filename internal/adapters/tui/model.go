// Package tui renders the quote of the day in the terminal.
//
// Model is a Bubble Tea program with refresh, copy and share bindings.
// The provider drives its loading and render states through Bridge, which
// turns ports.Display calls into Bubble Tea messages. Printer is the
// one-shot equivalent that writes the quote to an io.Writer.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/daily-quote/internal/app"
	"github.com/jsamuelsen/daily-quote/internal/domain"
	"github.com/jsamuelsen/daily-quote/internal/ports"
)

// DefaultCopiedLabelDuration is how long the copy button reads "✅ Copied".
const DefaultCopiedLabelDuration = 1200 * time.Millisecond

const defaultWidth = 64

// Provider is the part of app.QuoteProvider the widget drives.
type Provider interface {
	LoadQuote(ctx context.Context, forceNew bool) (domain.Result, error)
	CopyCurrent(ctx context.Context) bool
	ShareCurrent(ctx context.Context)
}

// DisplayProvider is a Provider whose display surface can be attached.
type DisplayProvider interface {
	Provider
	SetDisplay(d ports.Display)
}

// Options configures the widget.
type Options struct {
	// CopiedLabelDuration defaults to DefaultCopiedLabelDuration.
	CopiedLabelDuration time.Duration
}

type (
	loadingMsg struct{}

	renderMsg struct{ quote domain.Quote }

	loadDoneMsg struct {
		result domain.Result
		err    error
	}

	copiedMsg struct{ ok bool }

	copyResetMsg struct{ seq int }

	sharedMsg struct{}
)

// Model is the Bubble Tea model of the widget.
type Model struct {
	ctx      context.Context
	provider Provider
	keys     keyMap
	help     help.Model

	quote   domain.Quote
	loading bool
	status  string
	failed  bool

	copied    bool
	copySeq   int
	copiedFor time.Duration

	width int
}

// NewModel creates the widget model. ctx bounds every provider call.
func NewModel(ctx context.Context, provider Provider, opts Options) Model {
	copiedFor := opts.CopiedLabelDuration
	if copiedFor <= 0 {
		copiedFor = DefaultCopiedLabelDuration
	}

	return Model{
		ctx:       ctx,
		provider:  provider,
		keys:      defaultKeyMap(),
		help:      help.New(),
		loading:   true,
		copiedFor: copiedFor,
		width:     defaultWidth,
	}
}

// Init starts the first, non-forced load.
func (m Model) Init() tea.Cmd {
	return m.load(false)
}

func (m Model) load(forceNew bool) tea.Cmd {
	return func() tea.Msg {
		res, err := m.provider.LoadQuote(m.ctx, forceNew)
		return loadDoneMsg{result: res, err: err}
	}
}

func (m Model) copyQuote() tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{ok: m.provider.CopyCurrent(m.ctx)}
	}
}

func (m Model) share() tea.Cmd {
	return func() tea.Msg {
		m.provider.ShareCurrent(m.ctx)
		return sharedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load(true)
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyQuote()
		case key.Matches(msg, m.keys.Share):
			return m, m.share()
		}

	case tea.WindowSizeMsg:
		m.width = min(msg.Width-4, defaultWidth)
		m.help.Width = msg.Width

	case loadingMsg:
		m.loading = true
		m.quote = domain.Quote{}

	case renderMsg:
		m.loading = false
		m.quote = msg.quote

	case loadDoneMsg:
		m.onLoadDone(msg)

	case copiedMsg:
		if !msg.ok {
			return m, nil
		}

		m.copied = true
		m.copySeq++
		seq := m.copySeq

		return m, tea.Tick(m.copiedFor, func(time.Time) tea.Msg {
			return copyResetMsg{seq: seq}
		})

	case copyResetMsg:
		// A newer copy restarted the timer.
		if msg.seq == m.copySeq {
			m.copied = false
		}

	case sharedMsg:
		m.status = "shared"
		m.failed = false
	}

	return m, nil
}

func (m *Model) onLoadDone(msg loadDoneMsg) {
	switch {
	case errors.Is(msg.err, app.ErrSuperseded):
		// The newer load reports its own outcome.
	case msg.err != nil:
		m.loading = false
		m.failed = true
		m.status = "could not load today's quote: " + msg.err.Error()
	default:
		m.loading = false
		m.failed = false
		m.quote = msg.result.Quote
		m.status = sourceStatus(msg.result.Source)
	}
}

func sourceStatus(s domain.Source) string {
	switch s {
	case domain.SourceCache:
		return "today's quote"
	case domain.SourceNetwork:
		return "fresh from the quote service"
	case domain.SourceFallback:
		return "offline: showing a saved quote"
	default:
		return ""
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	body := lipgloss.NewStyle().Width(m.width)

	if m.loading {
		b.WriteString(body.Render(mutedStyle.Render(loadingText)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(body.Render(quoteStyle.Render(m.quote.Text())))
		b.WriteString("\n")
		b.WriteString(body.Align(lipgloss.Right).Render(authorStyle.Render(m.quote.Attribution())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.buttons())

	if m.status != "" {
		style := mutedStyle
		if m.failed {
			style = errorStyle
		}

		b.WriteString("\n")
		b.WriteString(style.Render(m.status))
	}

	return panelStyle.Render(b.String()) + "\n" + m.help.View(m.keys) + "\n"
}

func (m Model) buttons() string {
	copyButton := buttonStyle.Render(copyLabel)
	if m.copied {
		copyButton = copiedStyle.Render(copiedLabel)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle.Render(refreshLabel),
		copyButton,
		buttonStyle.Render(shareLabel),
	)
}

// Run attaches a Bridge to provider and runs the widget until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, provider DisplayProvider, opts Options, progOpts ...tea.ProgramOption) error {
	progOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)
	prog := tea.NewProgram(NewModel(ctx, provider, opts), progOpts...)

	provider.SetDisplay(NewBridge(prog))
	defer provider.SetDisplay(nil)

	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}

package desktop

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// Browser launch commands per platform.
const (
	XDGOpenCommand  = "xdg-open"
	OpenCommand     = "open"
	RundllCommand   = "rundll32"
	RundllURLParams = "url.dll,FileProtocolHandler"
)

// ErrNoBrowser is returned when no launcher is known for the platform.
var ErrNoBrowser = errors.New("no browser launcher for this platform")

// runFunc starts a command; replaced in tests.
type runFunc func(ctx context.Context, name string, args ...string) error

// Opener opens URLs in the user's default browser.
type Opener struct {
	goos string
	run  runFunc
}

// NewOpener returns an opener for the running platform.
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS, run: startCommand}
}

// Open implements ports.URLOpener. It returns once the launcher has started.
func (o *Opener) Open(ctx context.Context, url string) error {
	name, args, err := browserCommand(o.goos, url)
	if err != nil {
		return err
	}

	if err := o.run(ctx, name, args...); err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}

	return nil
}

func browserCommand(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return OpenCommand, []string{url}, nil
	case "windows":
		// cmd /c start would split the URL on '&'.
		return RundllCommand, []string{RundllURLParams, url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return XDGOpenCommand, []string{url}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrNoBrowser, goos)
	}
}

func startCommand(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := exec.LookPath(name); err != nil {
		return err
	}

	// Not tied to ctx: the launcher must outlive the key press that started it.
	cmd := exec.Command(name, args...) //nolint:gosec,noctx // fixed launcher, URL is an argument
	if err := cmd.Start(); err != nil {
		return err
	}

	// Reap the launcher without blocking the caller.
	go func() { _ = cmd.Wait() }()

	return nil
}

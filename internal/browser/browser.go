// Package browser opens URLs in the user's default browser.
package browser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	pkgbrowser "github.com/pkg/browser"
)

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// System opens URLs with the platform's default browser.
type System struct {
	open func(url string) error
}

// NewSystem returns an opener for the running platform. Launcher output is
// discarded so it cannot draw over the terminal shell.
func NewSystem() *System {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
	return &System{open: pkgbrowser.OpenURL}
}

// Open hands url to the platform launcher.
func (s *System) Open(url string) error {
	if err := s.open(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// OpenAfter opens url once delay has passed, unless ctx is cancelled first.
// It never blocks the caller. Failures are logged and otherwise ignored.
func OpenAfter(ctx context.Context, o Opener, delay time.Duration, url string, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	go func() {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		if err := o.Open(url); err != nil {
			logger.Warn("could not open browser", "url", url, "error", err)
			return
		}
		logger.Info("opened browser", "url", url)
	}()
}

// Package dispatch turns a confirmed query into the external search action.
package dispatch

import (
	"log/slog"
	"net/url"
	"strings"

	"rodrierr/internal/browser"
	"rodrierr/internal/domain"
	"rodrierr/internal/eventbus"
	"rodrierr/internal/history"
)

// SearchURL appends q, percent-encoded as a query component, to base.
// Spaces become %20, matching the browser's encodeURIComponent.
func SearchURL(base, q string) string {
	if base == "" {
		base = domain.DefaultSearchURL
	}
	// QueryEscape turns a literal '+' into %2B, so every remaining '+' is a space
	return base + strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}

// Result describes what Confirm did.
type Result struct {
	Query      string
	URL        string
	Dispatched bool
}

// Dispatcher records confirmed queries and opens the provider URL.
type Dispatcher struct {
	history *history.Manager
	opener  browser.Opener
	baseURL string
	bus     eventbus.EventBus
	logger  *slog.Logger
}

// Option customises a Dispatcher.
type Option func(*Dispatcher)

// WithBaseURL overrides the provider prefix.
func WithBaseURL(base string) Option { return func(d *Dispatcher) { d.baseURL = base } }

// WithBus publishes a SearchDispatchedEvent for each dispatch, and an
// ErrorEvent when the history could not be saved.
func WithBus(b eventbus.EventBus) Option { return func(d *Dispatcher) { d.bus = b } }

// WithLogger sets the logger used for opener failures.
func WithLogger(l *slog.Logger) Option { return func(d *Dispatcher) { d.logger = l } }

// New creates a dispatcher.
func New(h *history.Manager, o browser.Opener, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		history: h,
		opener:  o,
		baseURL: domain.DefaultSearchURL,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Confirm trims text and, if anything is left, records it in the history and
// opens the search URL. A blank query does nothing. The returned error is a
// history persistence failure; the search is still opened in that case.
// Opener failures are logged only.
func (d *Dispatcher) Confirm(text string) (Result, error) {
	q := strings.TrimSpace(text)
	if q == "" {
		return Result{}, nil
	}

	saveErr := d.history.Add(q)

	res := Result{Query: q, URL: SearchURL(d.baseURL, q), Dispatched: true}
	if err := d.opener.Open(res.URL); err != nil {
		d.logger.Warn("could not open search", "url", res.URL, "error", err)
	}
	if d.bus != nil {
		d.bus.Publish(eventbus.SearchDispatchedEvent{Query: res.Query, URL: res.URL})
		if saveErr != nil {
			d.bus.Publish(eventbus.ErrorEvent{Message: "history not saved", Err: saveErr})
		}
	}
	return res, saveErr
}

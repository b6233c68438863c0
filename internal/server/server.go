// Package server serves the search page over HTTP.
package server

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rodrierr/internal/config"
	"rodrierr/internal/domain"
	"rodrierr/internal/eventbus"
)

//go:embed templates/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// PageData holds the values injected into the page script.
type PageData struct {
	BaseSuggestions []string
	MaxHistory      int
	MaxSuggestions  int
	StorageKey      string
	SearchURL       string
}

// DefaultPageData returns the page values for the given search base.
func DefaultPageData(searchURL string) PageData {
	if searchURL == "" {
		searchURL = domain.DefaultSearchURL
	}
	return PageData{
		BaseSuggestions: domain.BaseSuggestions(),
		MaxHistory:      domain.MaxHistory,
		MaxSuggestions:  domain.MaxSuggestions,
		StorageKey:      domain.StorageKey,
		SearchURL:       searchURL,
	}
}

// Render executes the page template.
func Render(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// Server serves the fixed search page at "/".
type Server struct {
	addr   string
	logger *slog.Logger
	bus    eventbus.EventBus
	page   []byte
	router *chi.Mux

	mu  sync.Mutex
	url string
}

// New renders the page once and builds the router.
func New(cfg *config.Config, logger *slog.Logger, bus eventbus.EventBus) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	page, err := Render(DefaultPageData(cfg.Search.BaseURL))
	if err != nil {
		return nil, err
	}

	s := &Server{
		addr:   cfg.Server.Addr,
		logger: logger.With("component", "server"),
		bus:    bus,
		page:   page,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Get("/", s.handleIndex)
	s.router = r
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// URL returns the root URL once the listener is bound.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(s.page)
}

// Start binds the listener and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Listen binds the configured address. URL reports the bound port from
// then on, which matters for ":0".
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.mu.Lock()
	s.url = RootURL(ln.Addr().String())
	s.mu.Unlock()
	return ln, nil
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	root := RootURL(ln.Addr().String())

	s.mu.Lock()
	s.url = root
	s.mu.Unlock()

	s.logger.Info("serving", "url", root)
	if s.bus != nil {
		s.bus.Publish(eventbus.ServerStartedEvent{URL: root})
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("stopped")
	return nil
}

// RootURL turns a listen address into a browsable root URL. Wildcard hosts
// map to the loopback address.
func RootURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + "/"
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}

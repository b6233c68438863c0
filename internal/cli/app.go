package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"rodrierr/internal/config"
	"rodrierr/internal/eventbus"
	"rodrierr/internal/history"
)

// app holds what every command needs: configuration, a logger and the bus.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	bus    eventbus.EventBus

	closers []func() error
}

// logSink picks the log destination once the configuration is known.
type logSink func(cfg *config.Config) (io.Writer, func() error, error)

// toWriter logs to w.
func toWriter(w io.Writer) logSink {
	return func(*config.Config) (io.Writer, func() error, error) {
		return w, nil, nil
	}
}

// toLogFile appends to the configured log file, keeping the terminal free
// for the alternate screen.
func toLogFile(cfg *config.Config) (io.Writer, func() error, error) {
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

func newApp(configPath string, sink logSink) (*app, error) {
	svc := config.NewConfigService()
	if configPath != "" {
		svc = config.NewConfigServiceAt(configPath)
	}

	var (
		cfg      *config.Config
		err      error
		firstRun bool
	)
	if configPath != "" {
		// an explicit path must exist
		cfg, err = svc.LoadFromPath(configPath)
	} else {
		_, statErr := os.Stat(svc.Path())
		firstRun = os.IsNotExist(statErr)
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, err
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	w, closeLog, err := sink(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if closeLog != nil {
		a.closers = append(a.closers, closeLog)
	}
	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	a.bus = eventbus.New(a.logger)
	stopAudit := eventbus.LogEvents(a.bus, a.logger)
	a.closers = append(a.closers, func() error { a.bus.Close(); stopAudit(); return nil })

	a.bus.Publish(eventbus.ConfigLoadedEvent{Path: svc.Path()})

	if firstRun {
		// leave the defaults on disk for the user to edit
		if err := config.NewConfigServiceWithBus(svc.Path(), a.bus).Save(cfg); err != nil {
			a.logger.Warn("could not write default config", "path", svc.Path(), "error", err)
		}
	}
	return a, nil
}

// openHistory opens the configured history store and loads it.
func (a *app) openHistory() (*history.Manager, error) {
	dir := a.cfg.History.Dir
	if dir == "" {
		dir = config.DefaultDir()
	}

	var repo history.Repository
	switch a.cfg.History.Backend {
	case config.BackendSQLite:
		r, err := history.OpenSQLite(filepath.Join(dir, "rodrierr.db"))
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, r.Close)
		repo = r
	case config.BackendMemory:
		repo = history.NewMemoryRepository()
	default:
		repo = history.NewFileRepositoryInDir(dir)
	}

	mgr := history.NewManager(repo, history.WithLogger(a.logger))
	mgr.Load()
	a.logger.Debug("history loaded", "backend", a.cfg.History.Backend, "entries", mgr.Len())
	return mgr, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close", "error", err)
		}
	}
}

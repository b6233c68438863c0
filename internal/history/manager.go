package history

import (
	"log/slog"

	"rodrierr/internal/domain"
)

// ChangeFunc is called after every mutation with a copy of the new history.
type ChangeFunc func(SearchHistory)

// Manager owns the in-memory history; every mutation goes through it and is
// written to the repository before the call returns.
type Manager struct {
	repo      Repository
	entries   SearchHistory
	limit     int
	logger    *slog.Logger
	listeners []ChangeFunc
}

// Option customises a Manager.
type Option func(*Manager)

// WithLimit overrides domain.MaxHistory.
func WithLimit(n int) Option { return func(m *Manager) { m.limit = n } }

// WithLogger sets the logger used for absorbed load failures.
func WithLogger(l *slog.Logger) Option { return func(m *Manager) { m.logger = l } }

// NewManager creates a manager with an empty history. Call Load to read the
// persisted state.
func NewManager(repo Repository, opts ...Option) *Manager {
	m := &Manager{
		repo:    repo,
		entries: SearchHistory{},
		limit:   domain.MaxHistory,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(m)
	}
	if m.limit <= 0 {
		m.limit = domain.MaxHistory
	}
	return m
}

// OnChange registers fn to run after each Add or Clear.
func (m *Manager) OnChange(fn ChangeFunc) {
	m.listeners = append(m.listeners, fn)
}

// Load replaces the in-memory history with the persisted one. Missing or
// unreadable data yields an empty history; the error is only logged.
func (m *Manager) Load() SearchHistory {
	h, err := m.repo.Load()
	if err != nil {
		m.logger.Debug("history load failed, starting empty", "error", err)
		h = SearchHistory{}
	}
	m.entries = Normalize(h, m.limit)
	return m.entries.Clone()
}

// Entries returns a copy of the current history.
func (m *Manager) Entries() SearchHistory {
	return m.entries.Clone()
}

// Len returns the number of entries.
func (m *Manager) Len() int {
	return len(m.entries)
}

// Add records q at the front of the history. Blank queries are ignored and
// nothing is written. A failed write keeps the in-memory change and returns
// a *PersistenceError.
func (m *Manager) Add(q string) error {
	next, ok := Insert(m.entries, q, m.limit)
	if !ok {
		return nil
	}
	m.entries = next
	err := m.persist("add")
	m.notify()
	return err
}

// Clear empties the history unconditionally.
func (m *Manager) Clear() error {
	m.entries = SearchHistory{}
	err := m.persist("clear")
	m.notify()
	return err
}

func (m *Manager) persist(op string) error {
	if err := m.repo.Save(m.entries.Clone()); err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

func (m *Manager) notify() {
	for _, fn := range m.listeners {
		fn(m.entries.Clone())
	}
}

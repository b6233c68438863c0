package history

import "fmt"

// Repository persists a SearchHistory.
//
// Load reports problems instead of hiding them; the Manager decides to treat
// any load error as an empty history. Save must be atomic: a reader sees
// either the previous value or the new one, never a partial write.
type Repository interface {
	Load() (SearchHistory, error)
	Save(h SearchHistory) error
}

// PersistenceError wraps a failed write to a Repository.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist history (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

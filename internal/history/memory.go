package history

import "sync"

// MemoryRepository keeps the encoded history in memory, like a browser's
// local storage entry. It is used for ephemeral sessions and tests.
type MemoryRepository struct {
	mu      sync.Mutex
	raw     []byte
	present bool
	saves   int
	saveErr error
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SetRaw stores data verbatim, bypassing encoding. Useful to simulate
// corrupt state.
func (r *MemoryRepository) SetRaw(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.raw = append([]byte(nil), data...)
	r.present = true
}

// Raw returns the stored bytes and whether anything was stored.
func (r *MemoryRepository) Raw() ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.raw...), r.present
}

// Saves returns how many successful writes happened.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// FailSaves makes subsequent saves return err; nil restores normal behaviour.
func (r *MemoryRepository) FailSaves(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveErr = err
}

func (r *MemoryRepository) Load() (SearchHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.present {
		return SearchHistory{}, nil
	}
	return Decode(r.raw)
}

func (r *MemoryRepository) Save(h SearchHistory) error {
	data, err := Encode(h)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.raw = data
	r.present = true
	r.saves++
	return nil
}

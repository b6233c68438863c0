package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"rodrierr/internal/domain"
)

// FileRepository stores the history as a JSON array in a single file.
type FileRepository struct {
	path string
}

// NewFileRepository stores history at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// NewFileRepositoryInDir stores history in dir, in a file named after the
// storage key.
func NewFileRepositoryInDir(dir string) *FileRepository {
	return NewFileRepository(filepath.Join(dir, domain.StorageKey+".json"))
}

// Path returns the backing file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the history. A missing file is an empty history, not an error.
func (r *FileRepository) Load() (SearchHistory, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return SearchHistory{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	return Decode(data)
}

// Save writes to a temporary file in the same directory, syncs it and renames
// it over the old file, so the previous content stays readable until the
// rename succeeds.
func (r *FileRepository) Save(h SearchHistory) error {
	data, err := Encode(h)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}

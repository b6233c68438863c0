package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepositoryEmpty(t *testing.T) {
	repo := openTestSQLite(t)
	h, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestSQLiteRepositoryRoundTripAndOverwrite(t *testing.T) {
	repo := openTestSQLite(t)

	require.NoError(t, repo.Save(SearchHistory{"a"}))
	require.NoError(t, repo.Save(SearchHistory{"b", "a"}))

	h, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, SearchHistory{"b", "a"}, h)

	var rows int
	require.NoError(t, repo.db.QueryRow(`SELECT COUNT(*) FROM kv_store`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSQLiteRepositoryStoresBrowserLayout(t *testing.T) {
	repo := openTestSQLite(t)
	m := NewManager(repo)
	m.Load()
	require.NoError(t, m.Add("Rust tutorial"))
	require.NoError(t, m.Clear())

	var key, value string
	require.NoError(t, repo.db.QueryRow(`SELECT key, value FROM kv_store`).Scan(&key, &value))
	assert.Equal(t, "rodrierr_history", key)
	assert.Equal(t, "[]", value)
}

func TestSQLiteRepositoryPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	repo, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(SearchHistory{"persisted"}))
	require.NoError(t, repo.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()
	h, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, SearchHistory{"persisted"}, h)
}

package cli

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodrierr/internal/browser"
	"rodrierr/internal/config"
	"rodrierr/internal/eventbus"
	"rodrierr/internal/history"
	"rodrierr/internal/server"
	"rodrierr/internal/ui"
)

type recordingOpener struct {
	mu   sync.Mutex
	urls []string
}

func (r *recordingOpener) Open(url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	return nil
}

func (r *recordingOpener) Opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

// stubHooks swaps the process-level hooks for the duration of a test.
func stubHooks(t *testing.T, opener browser.Opener, serve func(context.Context, *server.Server, net.Listener) error, tui func(*ui.Model, eventbus.EventBus) error) {
	t.Helper()
	origOpener, origServe, origTUI := newOpener, runServer, runTUI
	t.Cleanup(func() { newOpener, runServer, runTUI = origOpener, origServe, origTUI })
	if opener != nil {
		newOpener = func() browser.Opener { return opener }
	}
	if serve != nil {
		runServer = serve
	}
	if tui != nil {
		runTUI = tui
	}
}

func writeConfig(t *testing.T, dir, backend string, openOnStart bool) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf(`
[server]
addr = "127.0.0.1:0"

[browser]
open_on_start = %t
delay_ms = 10

[history]
backend = %q
dir = %q

[log]
level = "debug"
file = %q
`, openOnStart, backend, dir, filepath.Join(dir, "rodrierr.log"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// lockedBuffer is written by background loggers while the test reads it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRoot()
	var out bytes.Buffer
	var errOut lockedBuffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootHasSubcommands(t *testing.T) {
	cmd := NewRoot()
	assert.Equal(t, "rodrierr", cmd.Use)
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"serve", "tui", "history", "config"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestServeWithoutBrowser(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "file", true)
	opener := &recordingOpener{}
	var got *server.Server
	stubHooks(t, opener, func(ctx context.Context, s *server.Server, ln net.Listener) error {
		got = s
		time.Sleep(50 * time.Millisecond)
		return nil
	}, nil)

	out, _, err := execute(t, "serve", "--config", cfgPath, "--no-browser", "--addr", "127.0.0.1:0")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Contains(t, out, got.URL())
	assert.Empty(t, opener.Opened())
}

func TestRootServesAndOpensBrowser(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "file", true)
	opener := &recordingOpener{}
	var boundPort string
	stubHooks(t, opener, func(ctx context.Context, s *server.Server, ln net.Listener) error {
		_, boundPort, _ = net.SplitHostPort(ln.Addr().String())
		require.Eventually(t, func() bool { return len(opener.Opened()) == 1 }, 2*time.Second, 5*time.Millisecond)
		return nil
	}, nil)

	out, _, err := execute(t, "--config", cfgPath, "--addr", "127.0.0.1:0")
	require.NoError(t, err)
	require.NotEmpty(t, boundPort)
	require.NotEqual(t, "0", boundPort)
	want := "http://127.0.0.1:" + boundPort + "/"
	assert.Contains(t, out, want)
	assert.Equal(t, []string{want}, opener.Opened())
}

func TestServeRespectsOpenOnStartFalse(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "file", false)
	opener := &recordingOpener{}
	stubHooks(t, opener, func(ctx context.Context, s *server.Server, ln net.Listener) error {
		time.Sleep(100 * time.Millisecond)
		return nil
	}, nil)

	_, _, err := execute(t, "serve", "--config", cfgPath)
	require.NoError(t, err)
	assert.Empty(t, opener.Opened())
}

func TestMissingExplicitConfigFails(t *testing.T) {
	stubHooks(t, &recordingOpener{}, func(context.Context, *server.Server, net.Listener) error { return nil }, nil)
	_, _, err := execute(t, "serve", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestHistoryListAndClearFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "file", false)
	require.NoError(t, history.NewFileRepositoryInDir(dir).Save(history.SearchHistory{"rust tutorial", "python"}))

	out, _, err := execute(t, "history", "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "  1  rust tutorial\n  2  python\n", out)

	out, _, err = execute(t, "history", "list", "--json", "--config", cfgPath)
	require.NoError(t, err)
	assert.JSONEq(t, `["rust tutorial","python"]`, out)

	out, _, err = execute(t, "history", "clear", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Cleared 2 entries\n", out)

	out, _, err = execute(t, "history", "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "No searches yet\n", out)
}

func TestHistoryListSQLite(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "sqlite", false)

	repo, err := history.OpenSQLite(filepath.Join(dir, "rodrierr.db"))
	require.NoError(t, err)
	require.NoError(t, repo.Save(history.SearchHistory{"go generics"}))
	require.NoError(t, repo.Close())

	out, _, err := execute(t, "history", "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "  1  go generics\n", out)
}

func TestTUIBuildsModelAndLogsToFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "memory", false)
	var model *ui.Model
	stubHooks(t, &recordingOpener{}, nil, func(m *ui.Model, bus eventbus.EventBus) error {
		model = m
		require.NotNil(t, bus)
		return nil
	})

	_, stderr, err := execute(t, "tui", "--config", cfgPath)
	require.NoError(t, err)
	require.NotNil(t, model)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(filepath.Join(dir, "rodrierr.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting terminal shell")
	// audit records are flushed before the log file is closed
	assert.Contains(t, string(data), "config loaded")
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rodrierr.yaml")

	out, _, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "Wrote default config to "+path+"\n", out)

	cfg, err := config.NewConfigServiceAt(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, _, err = execute(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "config", "init", "--force", "--config", path)
	require.NoError(t, err)
}

func TestFirstRunWritesDefaultConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	path := filepath.Join(config.DefaultDir(), "config.toml")
	require.NoFileExists(t, path)

	out, _, err := execute(t, "history", "list")
	require.NoError(t, err)
	assert.Equal(t, "No searches yet\n", out)

	require.FileExists(t, path)
	cfg, err := config.NewConfigServiceAt(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

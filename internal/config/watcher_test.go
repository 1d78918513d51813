package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, path, host string) {
	t.Helper()
	content := "host: " + host + "\nport: 8080\nurl: /api/v1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWatcherLoadsInitialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeTestConfig(t, path, "initial")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Stop() }()

	cfg := w.GetLastConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "initial", cfg.Host)
}

func TestWatcherStartFailsOnInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\n"), 0o600))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	assert.Error(t, w.Start(context.Background()))
}

func TestWatcherReloadOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeTestConfig(t, path, "before")

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) {
		reloaded <- cfg
	}, WithDebounceDelay(10*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Stop() }()

	writeTestConfig(t, path, "after")

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "after", cfg.Host)
		assert.Equal(t, "after", w.GetLastConfig().Host)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatcherKeepsLastConfigOnInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeTestConfig(t, path, "valid")

	errCh := make(chan error, 1)
	w, err := NewWatcher(path, nil,
		WithDebounceDelay(10*time.Millisecond),
		WithErrorCallback(func(err error) {
			errCh <- err
		}),
	)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Stop() }()

	// Invalid: missing required fields.
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\n"), 0o600))

	select {
	case <-errCh:
		assert.Equal(t, "valid", w.GetLastConfig().Host)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatcherStopIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeTestConfig(t, path, "host")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

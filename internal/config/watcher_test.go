package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchDeliversReloadOnChange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "panels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan Reload, 1)
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, nil, reloads) }()

	// Give the watcher a moment to register before touching the file.
	time.Sleep(200 * time.Millisecond)

	updated := strings.Replace(validDoc, "name: demo layout", "name: updated layout", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	select {
	case reload := <-reloads:
		require.Equal(t, "updated layout", reload.Document.Name)
		require.Len(t, reload.States, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatchRejectsBrokenDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "panels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan Reload, 1)
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, nil, reloads) }()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("version: [broken"), 0o644))

	select {
	case reload := <-reloads:
		t.Fatalf("broken document should not reload, got %q", reload.Document.Name)
	case <-time.After(time.Second):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatchMissingFile(t *testing.T) {
	t.Parallel()

	reloads := make(chan Reload)
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"), nil, reloads)
	require.Error(t, err)

	_, open := <-reloads
	require.False(t, open)
}

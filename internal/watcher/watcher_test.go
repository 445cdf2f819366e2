package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWatcher(t *testing.T, w *Watcher) (context.CancelFunc, chan struct{}) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx, nil)
		close(done)
	}()
	return cancel, done
}

func TestWatcherFiresOnStoreFileWrite(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "kanban.json")

	var called atomic.Int32
	w, err := New([]string{store}, func() { called.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	cancel, done := runWatcher(t, w)
	defer func() {
		cancel()
		<-done
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(store, []byte("[]"), 0o600))

	assert.Eventually(t, func() bool { return called.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "dayboard.db")

	var called atomic.Int32
	w, err := New([]string{store}, func() { called.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	cancel, done := runWatcher(t, w)
	defer func() {
		cancel()
		<-done
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), called.Load())
}

func TestWatcherNewFailsForMissingParent(t *testing.T) {
	_, err := New([]string{"/nonexistent/dir/dayboard.db"}, func() {})
	require.Error(t, err)
}

func TestWatcherCloseStopsRun(t *testing.T) {
	w, err := New([]string{t.TempDir()}, func() {})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	done := make(chan struct{})
	go func() {
		w.Run(context.Background(), nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Close")
	}
}

func TestRelevantMatchesSidecarFiles(t *testing.T) {
	w := &Watcher{names: map[string]bool{"dayboard.db": true}}
	assert.True(t, w.relevant(fsnotify.Event{Name: "/x/dayboard.db-wal", Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: "/x/dayboard.db", Op: fsnotify.Create}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "/x/dayboard.db", Op: fsnotify.Chmod}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "/x/other.db", Op: fsnotify.Write}))
}

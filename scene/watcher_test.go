package scene

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchLayoutReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.toml")
	require.NoError(t, os.WriteFile(path, []byte(`version = "1.0.0"`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := WatchLayout(ctx, path)
	require.NoError(t, err)
	defer w.Close()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(`version = "1.0.1"`), 0o644))

	select {
	case got := <-w.Changes():
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchLayoutStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	w, err := WatchLayout(ctx, path)
	require.NoError(t, err)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-w.Changes():
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
	assert.NoError(t, w.Close())
}

func TestWatchLayoutMissingDir(t *testing.T) {
	_, err := WatchLayout(context.Background(), filepath.Join(t.TempDir(), "nope", "room.toml"))
	assert.Error(t, err)
}

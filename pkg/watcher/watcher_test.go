package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type changes struct {
	mu    sync.Mutex
	paths []string
}

func (c *changes) add(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func (c *changes) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.paths)
}

func TestWatchDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(file, []byte("theme = \"light\"\n"), 0o644))

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)

	got := &changes{}
	require.NoError(t, fw.Watch([]string{file}, got.add))
	fw.Start(context.Background())

	require.NoError(t, os.WriteFile(file, []byte("theme = \"dark\"\n"), 0o644))

	assert.Eventually(t, func() bool { return got.count() >= 1 }, 3*time.Second, 10*time.Millisecond)
	require.NoError(t, fw.Close())

	abs, err := filepath.Abs(file)
	require.NoError(t, err)
	got.mu.Lock()
	defer got.mu.Unlock()
	assert.Equal(t, abs, got.paths[0])
}

func TestWatchDetectsReplaceByRename(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(file, []byte("fps = 30\n"), 0o644))

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	got := &changes{}
	require.NoError(t, fw.Watch([]string{file}, got.add))
	fw.Start(context.Background())

	tmp := filepath.Join(dir, "settings.toml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("fps = 60\n"), 0o644))
	require.NoError(t, os.Rename(tmp, file))

	assert.Eventually(t, func() bool { return got.count() >= 1 }, 3*time.Second, 10*time.Millisecond)
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	got := &changes{}
	require.NoError(t, fw.Watch([]string{file}, got.add))
	fw.Start(context.Background())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, got.count())
}

func TestWatchDebounces(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	fw, err := NewFileWatcher(150*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	got := &changes{}
	require.NoError(t, fw.Watch([]string{file}, got.add))
	fw.Start(context.Background())

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(file, []byte{byte('a' + i)}, 0o644))
	}

	assert.Eventually(t, func() bool { return got.count() >= 1 }, 3*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, got.count())
}

func TestStopOnContextCancel(t *testing.T) {
	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	fw.Start(ctx)
	cancel()

	require.NoError(t, fw.Close())
}

package enum

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func collect(t *testing.T, e Enumerator) []string {
	t.Helper()
	var paths []string
	require.NoError(t, e.Enumerate(context.Background(), func(path string) error {
		paths = append(paths, path)
		return nil
	}))
	return paths
}

func TestFilesystemEnumerator_WalksFiles(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.ts"), "a")
	writeTestFile(t, filepath.Join(root, "sub", "b.ts"), "b")

	paths := collect(t, NewFilesystemEnumerator(Config{Root: root}))

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.ts"),
		filepath.Join(root, "sub", "b.ts"),
	}, paths)
}

func TestFilesystemEnumerator_SkipsHidden(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "visible.ts"), "v")
	writeTestFile(t, filepath.Join(root, ".hidden.ts"), "h")
	writeTestFile(t, filepath.Join(root, ".git", "config"), "c")

	paths := collect(t, NewFilesystemEnumerator(Config{Root: root}))
	assert.Equal(t, []string{filepath.Join(root, "visible.ts")}, paths)

	withHidden := collect(t, NewFilesystemEnumerator(Config{Root: root, IncludeHidden: true}))
	assert.Len(t, withHidden, 3)
}

func TestFilesystemEnumerator_MaxFileSize(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "small.ts"), "ok")
	writeTestFile(t, filepath.Join(root, "big.ts"), "this one is too large")

	paths := collect(t, NewFilesystemEnumerator(Config{Root: root, MaxFileSize: 10}))
	assert.Equal(t, []string{filepath.Join(root, "small.ts")}, paths)
}

func TestFilesystemEnumerator_RespectsGitignore(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, ".gitignore"), "dist/\nignored.ts\n")
	writeTestFile(t, filepath.Join(root, "kept.ts"), "k")
	writeTestFile(t, filepath.Join(root, "ignored.ts"), "i")
	writeTestFile(t, filepath.Join(root, "dist", "bundle.js"), "b")

	paths := collect(t, NewFilesystemEnumerator(Config{Root: root}))
	assert.Equal(t, []string{filepath.Join(root, "kept.ts")}, paths)
}

func TestFilesystemEnumerator_Symlinks(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "real.ts"), "r")
	if err := os.Symlink(filepath.Join(root, "real.ts"), filepath.Join(root, "link.ts")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	paths := collect(t, NewFilesystemEnumerator(Config{Root: root}))
	assert.Equal(t, []string{filepath.Join(root, "real.ts")}, paths)

	followed := collect(t, NewFilesystemEnumerator(Config{Root: root, FollowSymlinks: true}))
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "link.ts"),
		filepath.Join(root, "real.ts"),
	}, followed)
}

func TestFilesystemEnumerator_CallbackErrorStopsWalk(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.ts"), "a")
	writeTestFile(t, filepath.Join(root, "b.ts"), "b")

	sentinel := errors.New("stop")
	count := 0
	err := NewFilesystemEnumerator(Config{Root: root}).Enumerate(context.Background(), func(string) error {
		count++
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, count)
}

func TestFilesystemEnumerator_ContextCancellation(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.ts"), "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFilesystemEnumerator(Config{Root: root}).Enumerate(ctx, func(string) error {
		t.Fatal("callback must not run after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsBinary(t *testing.T) {
	assert.False(t, IsBinary([]byte("plain text\n")))
	assert.True(t, IsBinary([]byte("bin\x00ary")))
	assert.False(t, IsBinary(nil))
}

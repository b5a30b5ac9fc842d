package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/extcopy/internal/plog"
)

// writeTree creates the given files (relative, slash-separated) under root.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("content of "+f), 0644))
	}
}

// relPaths collects a sequence as slash-separated paths relative to root.
func relPaths(t *testing.T, root string, entries []Entry) []string {
	t.Helper()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		rel, err := filepath.Rel(root, e.Path)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a/x.txt", "a/b/y.txt", "c.md", "z/empty/.keep")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "only-dirs", "deeper"), 0755))

	entries := slices.Collect(Walk(root))

	assert.Equal(t, []string{"a/b/y.txt", "a/x.txt", "c.md", "z/empty/.keep"}, relPaths(t, root, entries))
	for _, e := range entries {
		assert.True(t, e.Type.IsRegular(), "entry %s should be a regular file", e.Path)
	}
}

func TestWalk_IsRestartable(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "one.txt", "two.txt")

	seq := Walk(root)
	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestWalk_StopsEarly(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "1.txt", "2.txt", "3.txt")

	var seen []string
	for e := range Walk(root) {
		seen = append(seen, e.Name())
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"1.txt", "2.txt"}, seen)
}

func TestWalk_MissingRoot(t *testing.T) {
	var logBuf bytes.Buffer
	plog.SetOutput(&logBuf)
	t.Cleanup(func() { plog.SetOutputs(os.Stdout, os.Stderr) })

	root := filepath.Join(t.TempDir(), "does-not-exist")

	entries := slices.Collect(Walk(root))

	assert.Empty(t, entries)
	assert.Contains(t, logBuf.String(), `level=WARN msg="cannot read source"`)
}

func TestWalk_RootIsFile(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "single.txt")
	root := filepath.Join(dir, "single.txt")

	entries := slices.Collect(Walk(root))

	require.Len(t, entries, 1)
	assert.Equal(t, root, entries[0].Path)
}

func TestWalk_SkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "real/file.txt")

	if err := os.Symlink(filepath.Join(root, "real", "file.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	// A directory link back to the root would loop forever if followed.
	require.NoError(t, os.Symlink(root, filepath.Join(root, "real", "loop")))

	entries := slices.Collect(Walk(root))

	assert.Equal(t, []string{"real/file.txt"}, relPaths(t, root, entries))
}

func TestWalk_SymlinkedRoot(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "real/a/x.txt", "real/y.txt")
	root := filepath.Join(dir, "link")
	if err := os.Symlink(filepath.Join(dir, "real"), root); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	for _, given := range []string{root, root + string(filepath.Separator)} {
		entries := slices.Collect(Walk(given))

		assert.Equal(t, []string{"a/x.txt", "y.txt"}, relPaths(t, root, entries), "root %q", given)
		for _, e := range entries {
			assert.Equal(t, filepath.Clean(e.Path), e.Path)
		}
	}
}

func TestWalk_SymlinkedRootNestedLinksNotFollowed(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "real/file.txt", "other/outside.txt")
	root := filepath.Join(dir, "link")
	if err := os.Symlink(filepath.Join(dir, "real"), root); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "other"), filepath.Join(dir, "real", "nested")))

	entries := slices.Collect(Walk(root))

	assert.Equal(t, []string{"file.txt"}, relPaths(t, root, entries))
}

func TestWalk_SkipsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	root := t.TempDir()
	writeTree(t, root, "a/visible.txt", "locked/hidden.txt", "z/after.txt")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	entries := slices.Collect(Walk(root))

	assert.Equal(t, []string{"a/visible.txt", "z/after.txt"}, relPaths(t, root, entries))
}

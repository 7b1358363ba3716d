package bwd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyFsEval is a filesystem with no entries at all.
type emptyFsEval struct{}

func (emptyFsEval) Stat(path string) (os.FileInfo, error)    { return nil, os.ErrNotExist }
func (emptyFsEval) Lstat(path string) (os.FileInfo, error)   { return nil, os.ErrNotExist }
func (emptyFsEval) EvalSymlinks(path string) (string, error) { return "", os.ErrNotExist }

func TestFindRootGitDirectory(t *testing.T) {
	dir := t.TempDir()
	project := filepath.Join(dir, "project")
	deep := filepath.Join(project, "src", "deep")
	require.NoError(t, os.MkdirAll(deep, 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(project, ".git"), 0o755))

	root, ok := FindRoot(deep, nil)
	require.True(t, ok)
	assert.Equal(t, project, root, "any descendant should find the same ancestor")

	// A directory already containing the marker is its own root.
	root, ok = FindRoot(project, nil)
	require.True(t, ok)
	assert.Equal(t, project, root)
}

func TestFindRootGitFile(t *testing.T) {
	// A plain file named .git qualifies, as in git worktrees.
	dir := t.TempDir()
	project := filepath.Join(dir, "wt")
	require.NoError(t, os.MkdirAll(filepath.Join(project, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, ".git"), []byte("gitdir: elsewhere\n"), 0o644))

	root, ok := FindRoot(filepath.Join(project, "sub"), nil)
	require.True(t, ok)
	assert.Equal(t, project, root)
}

func TestFindRootBwdMarker(t *testing.T) {
	dir := t.TempDir()
	project := filepath.Join(dir, "area")
	nested := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, ".bwd-root"), nil, 0o644))

	root, ok := FindRoot(nested, nil)
	require.True(t, ok)
	assert.Equal(t, project, root)
}

func TestFindRootNearestWins(t *testing.T) {
	dir := t.TempDir()
	outer := filepath.Join(dir, "outer")
	inner := filepath.Join(outer, "inner")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, "src"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(outer, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(inner, ".bwd-root"), nil, 0o644))

	root, ok := FindRoot(filepath.Join(inner, "src"), nil)
	require.True(t, ok)
	assert.Equal(t, inner, root, "the walk stops at the first ancestor with a marker")
}

func TestFindRootNone(t *testing.T) {
	root, ok := FindRoot("/home/user/project/src", emptyFsEval{})
	assert.False(t, ok, "no marker anywhere should report no root, got %q", root)
	assert.Empty(t, root)
}

package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceAdapter_ResolveWorkdirDefaultsToCwd(t *testing.T) {
	adapter := NewWorkspaceAdapter()
	resolved, err := adapter.ResolveWorkdir("")
	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, resolved)
}

func TestWorkspaceAdapter_ResolveWorkdirExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	app := filepath.Join(home, "app")
	require.NoError(t, os.MkdirAll(app, 0755))

	adapter := NewWorkspaceAdapter()
	resolved, err := adapter.ResolveWorkdir("~/app")
	require.NoError(t, err)
	assert.Equal(t, app, resolved)
}

func TestWorkspaceAdapter_ResolveWorkdirMissing(t *testing.T) {
	adapter := NewWorkspaceAdapter()
	_, err := adapter.ResolveWorkdir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestWorkspaceAdapter_ResolveWorkdirNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	adapter := NewWorkspaceAdapter()
	_, err := adapter.ResolveWorkdir(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestWorkspaceAdapter_FindManifestPrefersRequirements(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("requests\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte("[project]\n"), 0644))

	adapter := NewWorkspaceAdapter()
	path, err := adapter.FindManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "requirements.txt"), path)
}

func TestWorkspaceAdapter_FindManifestFallsBackToPyProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte("[project]\n"), 0644))

	adapter := NewWorkspaceAdapter()
	path, err := adapter.FindManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pyproject.toml"), path)
}

// A directory with no manifest still resolves to the requirements.txt
// path: the install step must fail on the missing file rather than be
// skipped.
func TestWorkspaceAdapter_FindManifestMissingStillResolves(t *testing.T) {
	dir := t.TempDir()
	adapter := NewWorkspaceAdapter()
	path, err := adapter.FindManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "requirements.txt"), path)
}

func TestWorkspaceAdapter_FindManifestEmptyWorkdir(t *testing.T) {
	adapter := NewWorkspaceAdapter()
	_, err := adapter.FindManifest("")
	require.Error(t, err)
}

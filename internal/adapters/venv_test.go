package adapters

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyboot/internal/shared"
)

// writeScript drops an executable shell script and returns its path.
func writeScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func writeFakeVenv(t *testing.T, dir string, cfg string) string {
	t.Helper()
	venv := filepath.Join(dir, ".venv")
	require.NoError(t, os.MkdirAll(venv, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(venv, "pyvenv.cfg"), []byte(cfg), 0644))
	return venv
}

func TestVenvAdapter_Exists(t *testing.T) {
	dir := t.TempDir()
	adapter := NewVenvAdapter()
	assert.False(t, adapter.Exists(filepath.Join(dir, ".venv")))

	venv := writeFakeVenv(t, dir, "version = 3.12.3\n")
	assert.True(t, adapter.Exists(venv))
}

func TestVenvAdapter_CreateUsesInterpreter(t *testing.T) {
	dir := t.TempDir()
	// Fake interpreter that mimics `python -m venv <dir>`.
	python := writeScript(t, dir, "python3", `mkdir -p "$3" && : > "$3/pyvenv.cfg"`)

	venv := filepath.Join(dir, ".venv")
	adapter := NewVenvAdapter()
	require.NoError(t, adapter.Create(t.Context(), venv, python))
	assert.True(t, adapter.Exists(venv))
}

func TestVenvAdapter_CreatePropagatesExitCode(t *testing.T) {
	dir := t.TempDir()
	python := writeScript(t, dir, "python3", `echo "venv module missing" >&2; exit 7`)

	adapter := NewVenvAdapter()
	err := adapter.Create(t.Context(), filepath.Join(dir, ".venv"), python)
	require.Error(t, err)
	code, ok := shared.ExitCodeOf(err)
	require.True(t, ok)
	assert.Equal(t, 7, code)
	assert.Contains(t, err.Error(), "venv create")
}

func TestVenvAdapter_CreateEmptyDir(t *testing.T) {
	adapter := NewVenvAdapter()
	require.Error(t, adapter.Create(t.Context(), "", "python3"))
}

func TestVenvAdapter_Info(t *testing.T) {
	dir := t.TempDir()
	venv := writeFakeVenv(t, dir, "home = /usr/bin\nversion = 3.12.3\ninclude-system-site-packages = false\n")

	adapter := NewVenvAdapter()
	info, err := adapter.Info(venv)
	require.NoError(t, err)
	assert.Equal(t, venv, info.Path)
	assert.Equal(t, "3.12.3", info.PythonVersion)
	assert.Equal(t, "/usr/bin", info.BasePrefix)
}

func TestVenvAdapter_InfoMissing(t *testing.T) {
	adapter := NewVenvAdapter()
	_, err := adapter.Info(filepath.Join(t.TempDir(), ".venv"))
	require.Error(t, err)
}

func TestVenvAdapter_RemoveRefusesNonVenv(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(target, 0755))

	adapter := NewVenvAdapter()
	err := adapter.Remove(target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a virtual environment")
	assert.DirExists(t, target)
}

func TestVenvAdapter_Remove(t *testing.T) {
	dir := t.TempDir()
	venv := writeFakeVenv(t, dir, "version = 3.12.3\n")

	adapter := NewVenvAdapter()
	require.NoError(t, adapter.Remove(venv))
	assert.NoDirExists(t, venv)
}

package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("IOT_ENDPOINT=example.amazonaws.com\nTOPIC=devices/touch\n"), 0644))

	env, err := LoadEnvFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, "example.amazonaws.com", env["IOT_ENDPOINT"])
	assert.Equal(t, "devices/touch", env["TOPIC"])
}

func TestLoadEnvFileOptionalMissing(t *testing.T) {
	env, err := LoadEnvFile(filepath.Join(t.TempDir(), ".env"), false)
	require.NoError(t, err)
	assert.Nil(t, env)
}

func TestLoadEnvFileExplicitMissing(t *testing.T) {
	_, err := LoadEnvFile(filepath.Join(t.TempDir(), ".env"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env file not found")
}

func TestLoadEnvFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("not a valid line\n"), 0644))

	_, err := LoadEnvFile(path, true)
	require.Error(t, err)
}

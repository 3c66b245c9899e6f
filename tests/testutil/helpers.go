// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequirePython returns the path to a python3 interpreter on PATH and
// skips the test when none is installed.
func RequirePython(t *testing.T) string {
	t.Helper()
	python, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not available on PATH")
	}
	return python
}

// WriteFile creates path (and any missing parent directories) with the
// given content. It fails the test on error.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

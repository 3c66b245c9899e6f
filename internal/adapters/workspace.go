package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pyboot/internal/ports"
)

const (
	defaultManifest   = "requirements.txt"
	alternateManifest = "pyproject.toml"
)

type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

// ResolveWorkdir turns a configured working directory into an absolute
// path, expanding a leading ~ against the user's home directory. An
// empty path resolves to the current directory.
func (a WorkspaceAdapter) ResolveWorkdir(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to determine current directory").
				WithCause(err)
		}
		path = cwd
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to resolve home directory").
				WithCause(err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid working directory").
			WithCause(err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("working directory does not exist: " + abs).
			WithCause(err)
	}
	if !info.IsDir() {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("working directory is not a directory: " + abs)
	}
	return abs, nil
}

// FindManifest picks the manifest for a working directory, preferring
// requirements.txt over pyproject.toml. When neither exists it still
// returns the requirements.txt path so the install step fails on the
// missing file instead of being silently skipped.
func (a WorkspaceAdapter) FindManifest(workdir string) (string, error) {
	if strings.TrimSpace(workdir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("working directory is empty")
	}
	preferred := filepath.Join(workdir, defaultManifest)
	if _, err := os.Stat(preferred); err == nil {
		return preferred, nil
	}
	alternate := filepath.Join(workdir, alternateManifest)
	if _, err := os.Stat(alternate); err == nil {
		return alternate, nil
	}
	return preferred, nil
}

var _ ports.WorkspacePort = WorkspaceAdapter{}

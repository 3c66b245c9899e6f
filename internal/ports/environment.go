package ports

import (
	"context"

	"pyboot/internal/types"
)

// EnvironmentPort manages the isolated dependency environment (a Python
// virtual environment directory). Creation is delegated to the base
// interpreter's venv module; the directory itself is opaque.
type EnvironmentPort interface {
	Exists(dir string) bool
	Create(ctx context.Context, dir string, python string) error
	Info(dir string) (types.EnvironmentInfo, error)
	Remove(dir string) error
}

// WorkspacePort resolves the working directory and locates the manifest
// and entry point within it.
type WorkspacePort interface {
	ResolveWorkdir(path string) (string, error)
	FindManifest(workdir string) (string, error)
}

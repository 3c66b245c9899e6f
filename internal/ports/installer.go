package ports

import (
	"context"

	"pyboot/internal/types"
)

// InstallerPort drives pip inside an existing virtual environment. All
// invocations go through the venv's own interpreter so activation never
// leaks into the parent process.
type InstallerPort interface {
	UpgradePip(ctx context.Context, venvDir string) error
	InstallManifest(ctx context.Context, venvDir string, manifestPath string, indexURL string) error
	InstalledPackages(ctx context.Context, venvDir string) ([]types.InstalledPackage, error)
}

// LauncherPort hands off execution to the external entry point with the
// environment applied, returning once the child process exits.
type LauncherPort interface {
	Launch(ctx context.Context, req LaunchRequest) error
}

// LaunchRequest carries everything the launcher needs to spawn the
// entry point.
type LaunchRequest struct {
	Workdir    string
	VenvDir    string
	Entrypoint string
	Args       []string
	ExtraEnv   map[string]string
}

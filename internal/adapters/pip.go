package adapters

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pyboot/internal/core"
	"pyboot/internal/ports"
	"pyboot/internal/shared"
	"pyboot/internal/types"
)

// PipAdapter drives pip through the venv's own interpreter. Each
// invocation gets a scoped environment; the parent process environment
// is never touched.
type PipAdapter struct {
	Stdout io.Writer
	Stderr io.Writer
}

func NewPipAdapter() PipAdapter {
	return PipAdapter{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (a PipAdapter) UpgradePip(ctx context.Context, venvDir string) error {
	return a.runPip(ctx, venvDir, "pip upgrade", "install", "--upgrade", "pip")
}

func (a PipAdapter) InstallManifest(ctx context.Context, venvDir string, manifestPath string, indexURL string) error {
	if strings.TrimSpace(manifestPath) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is empty")
	}
	args := []string{"install", "-r", manifestPath}
	if strings.TrimSpace(indexURL) != "" {
		args = append(args, "--index-url", indexURL)
	}
	return a.runPip(ctx, venvDir, "pip install", args...)
}

func (a PipAdapter) runPip(ctx context.Context, venvDir string, step string, args ...string) error {
	if strings.TrimSpace(venvDir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("venv directory is empty")
	}
	full := append([]string{"-m", "pip"}, args...)
	cmd := exec.CommandContext(ctx, core.VenvPython(venvDir), full...)
	cmd.Env = core.BuildScopedEnv(venvDir, os.Environ(), nil)
	cmd.Stdout = a.Stdout
	cmd.Stderr = a.Stderr
	if err := cmd.Run(); err != nil {
		return stepError(step, step+" failed", nil, err)
	}
	return nil
}

type pipListEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (a PipAdapter) InstalledPackages(ctx context.Context, venvDir string) ([]types.InstalledPackage, error) {
	cmd := exec.CommandContext(ctx, core.VenvPython(venvDir), "-m", "pip", "list", "--format=json")
	cmd.Env = core.BuildScopedEnv(venvDir, os.Environ(), nil)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pip list failed").
			WithCause(shared.CommandError([]byte(stderr.String()), err))
	}
	var entries []pipListEntry
	if err := json.Unmarshal(output, &entries); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pip list output is invalid").
			WithCause(err)
	}
	packages := make([]types.InstalledPackage, 0, len(entries))
	for _, entry := range entries {
		name := shared.NormalizePipName(entry.Name)
		if name == "" {
			continue
		}
		packages = append(packages, types.InstalledPackage{
			Name:    name,
			Version: strings.TrimSpace(entry.Version),
		})
	}
	return packages, nil
}

var _ ports.InstallerPort = PipAdapter{}

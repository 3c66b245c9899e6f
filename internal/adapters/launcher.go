package adapters

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pyboot/internal/core"
	"pyboot/internal/ports"
)

// LauncherAdapter spawns the entry point through the venv interpreter
// with the scoped environment applied and the parent's standard streams
// wired through. It blocks until the child exits.
type LauncherAdapter struct{}

func NewLauncherAdapter() LauncherAdapter {
	return LauncherAdapter{}
}

func (a LauncherAdapter) Launch(ctx context.Context, req ports.LaunchRequest) error {
	if strings.TrimSpace(req.Entrypoint) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("entry point is empty")
	}
	args := append([]string{req.Entrypoint}, req.Args...)
	cmd := exec.CommandContext(ctx, core.VenvPython(req.VenvDir), args...)
	cmd.Dir = req.Workdir
	cmd.Env = core.BuildScopedEnv(req.VenvDir, os.Environ(), req.ExtraEnv)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return stepError("launch", "entry point failed", nil, err)
	}
	return nil
}

var _ ports.LauncherPort = LauncherAdapter{}

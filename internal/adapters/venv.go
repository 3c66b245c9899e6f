package adapters

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pyboot/internal/ports"
	"pyboot/internal/shared"
	"pyboot/internal/types"
)

const venvConfigFile = "pyvenv.cfg"

// VenvAdapter manages virtual environment directories. Creation is
// delegated to the base interpreter's venv module; existence is judged
// by the pyvenv.cfg marker the module writes.
type VenvAdapter struct{}

func NewVenvAdapter() VenvAdapter {
	return VenvAdapter{}
}

func (a VenvAdapter) Exists(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, venvConfigFile))
	return err == nil && !info.IsDir()
}

func (a VenvAdapter) Create(ctx context.Context, dir string, python string) error {
	if strings.TrimSpace(dir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("venv directory is empty")
	}
	if strings.TrimSpace(python) == "" {
		python = "python3"
	}
	cmd := exec.CommandContext(ctx, python, "-m", "venv", dir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return stepError("venv create", "venv creation failed", output, err)
	}
	return nil
}

func (a VenvAdapter) Info(dir string) (types.EnvironmentInfo, error) {
	content, err := os.ReadFile(filepath.Join(dir, venvConfigFile))
	if err != nil {
		return types.EnvironmentInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("environment not found: " + dir).
			WithCause(err)
	}
	info := types.EnvironmentInfo{Path: dir}
	for _, line := range strings.Split(string(content), "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "version", "version_info":
			if info.PythonVersion == "" {
				info.PythonVersion = value
			}
		case "home":
			info.BasePrefix = value
		}
	}
	return info, nil
}

// Remove deletes a venv directory. It refuses directories without a
// pyvenv.cfg marker so a mistyped path cannot wipe arbitrary trees.
func (a VenvAdapter) Remove(dir string) error {
	if !a.Exists(dir) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("not a virtual environment: " + dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to remove environment").
			WithCause(err)
	}
	return nil
}

// stepError wraps a failed subprocess with its output and exit code so
// the CLI can propagate the code as pyboot's own. The ExitError sits at
// the top of the chain; the errbuilder error carries the message and
// the command output.
func stepError(step string, msg string, output []byte, err error) error {
	code := 1
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		code = exit.ExitCode()
	}
	return &shared.ExitError{
		Step: step,
		Code: code,
		Err: errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(msg).
			WithCause(shared.CommandError(output, err)),
	}
}

var _ ports.EnvironmentPort = VenvAdapter{}

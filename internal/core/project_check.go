package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"pyboot/internal/types"
)

// ValidateProject checks a pyboot.yaml project spec for structural
// problems before any of it is used to drive the bootstrap.
func ValidateProject(ctx context.Context, spec types.ProjectSpec) error {
	assert.NotEmpty(ctx, spec.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, string(spec.Kind), "kind must be set")
	assert.NotEmpty(ctx, spec.Metadata.Name, "metadata.name must be set")
	if spec.Kind != types.SpecKindProject {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec kind must be project")
	}
	if spec.APIVersion != "v1" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported api_version: %s", spec.APIVersion))
	}
	if venv := spec.Defaults.Venv; venv != "" {
		if filepath.IsAbs(venv) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("defaults.venv must be relative to the working directory")
		}
		if strings.Contains(venv, "..") {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("defaults.venv must not escape the working directory")
		}
	}
	if entry := spec.Defaults.Entrypoint; entry != "" && filepath.IsAbs(entry) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("defaults.entrypoint must be relative to the working directory")
	}
	for key := range spec.Env {
		if strings.TrimSpace(key) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("env keys must not be empty")
		}
	}
	return nil
}

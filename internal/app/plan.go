package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"pyboot/internal/core"
	"pyboot/internal/types"
)

const projectSpecFile = "pyboot.yaml"

const (
	defaultVenvDir    = ".venv"
	defaultPython     = "python3"
	defaultEntrypoint = "main.py"
	defaultEnvFile    = ".env"
)

// overrides carries the caller-supplied settings for one operation.
// Empty fields fall back to the project spec and then to built-ins.
type overrides struct {
	Workdir    string
	Venv       string
	Python     string
	Manifest   string
	Entrypoint string
	Args       []string
	IndexURL   string
	EnvFile    string
}

// bootstrapPlan is the fully resolved input for the bootstrap steps:
// absolute paths, concrete interpreter, and the child environment
// additions from the project spec and env file.
type bootstrapPlan struct {
	ProjectName     string
	Workdir         string
	VenvDir         string
	Python          string
	ManifestPath    string
	Entrypoint      string
	Args            []string
	IndexURL        string
	EnvFilePath     string
	EnvFileExplicit bool
	Env             map[string]string
}

// resolvePlan merges overrides with the optional pyboot.yaml in the
// working directory. Precedence: override > project default > built-in.
// A project default workdir only applies when no override names one.
func (s Service) resolvePlan(ctx context.Context, o overrides) (bootstrapPlan, error) {
	workdir, err := s.Workspace.ResolveWorkdir(o.Workdir)
	if err != nil {
		return bootstrapPlan{}, err
	}

	spec, hasSpec, err := s.loadProjectSpec(ctx, workdir)
	if err != nil {
		return bootstrapPlan{}, err
	}
	if hasSpec && strings.TrimSpace(o.Workdir) == "" && spec.Defaults.Workdir != "" {
		workdir, err = s.Workspace.ResolveWorkdir(spec.Defaults.Workdir)
		if err != nil {
			return bootstrapPlan{}, err
		}
	}

	plan := bootstrapPlan{
		Workdir:    workdir,
		Python:     pick(o.Python, spec.Defaults.Python, defaultPython),
		Entrypoint: pick(o.Entrypoint, spec.Defaults.Entrypoint, defaultEntrypoint),
		IndexURL:   pick(o.IndexURL, spec.Defaults.IndexURL, ""),
		Env:        spec.Env,
	}
	if hasSpec {
		plan.ProjectName = spec.Metadata.Name
	}

	plan.Args = o.Args
	if len(plan.Args) == 0 {
		plan.Args = spec.Defaults.Args
	}

	venv := pick(o.Venv, spec.Defaults.Venv, defaultVenvDir)
	if filepath.IsAbs(venv) {
		plan.VenvDir = venv
	} else {
		plan.VenvDir = filepath.Join(workdir, venv)
	}

	manifest := pick(o.Manifest, spec.Defaults.Manifest, "")
	if manifest != "" {
		if !filepath.IsAbs(manifest) {
			manifest = filepath.Join(workdir, manifest)
		}
		plan.ManifestPath = manifest
	} else {
		found, err := s.Workspace.FindManifest(workdir)
		if err != nil {
			return bootstrapPlan{}, err
		}
		plan.ManifestPath = found
	}

	envFile := pick(o.EnvFile, spec.Defaults.EnvFile, "")
	plan.EnvFileExplicit = envFile != ""
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if !filepath.IsAbs(envFile) {
		envFile = filepath.Join(workdir, envFile)
	}
	plan.EnvFilePath = envFile

	return plan, nil
}

// loadProjectSpec reads and validates pyboot.yaml when the working
// directory has one. Its absence is not an error.
func (s Service) loadProjectSpec(ctx context.Context, workdir string) (types.ProjectSpec, bool, error) {
	path := filepath.Join(workdir, projectSpecFile)
	if _, err := os.Stat(path); err != nil {
		return types.ProjectSpec{}, false, nil
	}
	spec, err := s.ProjectSpec.LoadProject(path)
	if err != nil {
		return types.ProjectSpec{}, false, err
	}
	if err := core.ValidateProject(ctx, spec); err != nil {
		return types.ProjectSpec{}, false, err
	}
	return spec, true, nil
}

// launchEnv merges the project spec env with the optional env file;
// file entries win so local .env values override checked-in defaults.
func (s Service) launchEnv(plan bootstrapPlan) (map[string]string, error) {
	fileEnv, err := s.EnvFile(plan.EnvFilePath, plan.EnvFileExplicit)
	if err != nil {
		return nil, err
	}
	if len(plan.Env) == 0 {
		return fileEnv, nil
	}
	merged := map[string]string{}
	for key, value := range plan.Env {
		merged[key] = value
	}
	for key, value := range fileEnv {
		merged[key] = value
	}
	return merged, nil
}

func pick(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

package app

import (
	"time"

	"pyboot/internal/adapters"
	"pyboot/internal/ports"
)

type Service struct {
	Manifest    ports.ManifestPort
	ProjectSpec ports.ProjectSpecPort
	Workspace   ports.WorkspacePort
	Environment ports.EnvironmentPort
	Installer   ports.InstallerPort
	Launcher    ports.LauncherPort
	EnvFile     func(path string, explicit bool) (map[string]string, error)
	Clock       func() time.Time
}

func NewService() Service {
	return Service{
		Manifest:    adapters.NewManifestFileAdapter(),
		ProjectSpec: adapters.NewProjectFileAdapter(),
		Workspace:   adapters.NewWorkspaceAdapter(),
		Environment: adapters.NewVenvAdapter(),
		Installer:   adapters.NewPipAdapter(),
		Launcher:    adapters.NewLauncherAdapter(),
		EnvFile:     adapters.LoadEnvFile,
		Clock:       time.Now,
	}
}

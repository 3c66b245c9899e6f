package ports

import "pyboot/internal/types"

// ManifestPort reads declared dependencies from a manifest file
// (requirements.txt or pyproject.toml).
type ManifestPort interface {
	Load(path string) ([]types.Requirement, error)
	Kind(path string) types.ManifestKind
}

type ProjectSpecPort interface {
	LoadProject(path string) (types.ProjectSpec, error)
}

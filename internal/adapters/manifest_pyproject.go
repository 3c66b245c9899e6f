package adapters

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"pyboot/internal/types"
)

// pyprojectFile is the subset of pyproject.toml pyboot understands:
// PEP 621 project dependencies.
type pyprojectFile struct {
	Project struct {
		Name         string   `toml:"name"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

func loadPyProject(path string) ([]types.Requirement, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("manifest not found: %s", path)).
			WithCause(err)
	}
	var file pyprojectFile
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse pyproject.toml").
			WithCause(err)
	}
	var reqs []types.Requirement
	for i, dep := range file.Project.Dependencies {
		req, err := parseRequirementLine(dep, path, i+1)
		if err != nil {
			return nil, err
		}
		if req.Name == "" {
			continue
		}
		req.Source = path
		reqs = append(reqs, req)
	}
	return reqs, nil
}

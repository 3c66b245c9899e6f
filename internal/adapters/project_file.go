package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pyboot/internal/ports"
	"pyboot/internal/types"
)

type ProjectFileAdapter struct{}

func NewProjectFileAdapter() ProjectFileAdapter {
	return ProjectFileAdapter{}
}

func (a ProjectFileAdapter) LoadProject(path string) (types.ProjectSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ProjectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project spec not found").
			WithCause(err)
	}
	var spec types.ProjectSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.ProjectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse project spec yaml").
			WithCause(err)
	}
	return spec, nil
}

var _ ports.ProjectSpecPort = ProjectFileAdapter{}

package app

import (
	"context"

	"pyboot/internal/core"
)

// Status reports whether the environment exists and, when it does, how
// each manifest requirement compares to the installed-package list.
func (s Service) Status(ctx context.Context, req StatusRequest) (StatusResult, error) {
	plan, err := s.resolvePlan(ctx, overrides{
		Workdir:  req.Workdir,
		Venv:     req.Venv,
		Manifest: req.Manifest,
	})
	if err != nil {
		return StatusResult{}, err
	}
	result := StatusResult{
		ProjectName: plan.ProjectName,
		VenvDir:     plan.VenvDir,
	}
	if !s.Environment.Exists(plan.VenvDir) {
		return result, nil
	}
	result.Exists = true

	info, err := s.Environment.Info(plan.VenvDir)
	if err != nil {
		return StatusResult{}, err
	}
	result.PythonVersion = info.PythonVersion

	reqs, err := s.Manifest.Load(plan.ManifestPath)
	if err != nil {
		return StatusResult{}, err
	}
	installed, err := s.Installer.InstalledPackages(ctx, plan.VenvDir)
	if err != nil {
		return StatusResult{}, err
	}
	statuses, err := core.EvaluateRequirements(reqs, installed)
	if err != nil {
		return StatusResult{}, err
	}
	result.Requirements = statuses
	result.Unsatisfied = len(core.Unsatisfied(statuses))
	return result, nil
}

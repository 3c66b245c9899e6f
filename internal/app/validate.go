package app

import (
	"context"
)

// Validate parses the manifest and the optional project spec without
// touching the environment.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	plan, err := s.resolvePlan(ctx, overrides{
		Workdir:  req.Workdir,
		Manifest: req.Manifest,
	})
	if err != nil {
		return ValidateResult{}, err
	}
	reqs, err := s.Manifest.Load(plan.ManifestPath)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		ProjectName:  plan.ProjectName,
		Manifest:     plan.ManifestPath,
		Requirements: reqs,
	}, nil
}

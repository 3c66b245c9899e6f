package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Clean removes the virtual environment directory. Removing an absent
// environment is not an error, so clean is idempotent too.
func (s Service) Clean(ctx context.Context, req CleanRequest) (CleanResult, error) {
	plan, err := s.resolvePlan(ctx, overrides{
		Workdir: req.Workdir,
		Venv:    req.Venv,
	})
	if err != nil {
		return CleanResult{}, err
	}
	if !s.Environment.Exists(plan.VenvDir) {
		log.Ctx(ctx).Debug().Str("venv", plan.VenvDir).Msg("no environment to remove")
		return CleanResult{VenvDir: plan.VenvDir, Removed: false}, nil
	}
	if err := s.Environment.Remove(plan.VenvDir); err != nil {
		return CleanResult{}, err
	}
	log.Ctx(ctx).Info().Str("venv", plan.VenvDir).Msg("environment removed")
	return CleanResult{VenvDir: plan.VenvDir, Removed: true}, nil
}

package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"pyboot/internal/ports"
)

// Up is the full bootstrap contract: provision the environment, then
// hand off execution to the entry point with the environment applied.
// The entry point is never launched when a provisioning step fails.
func (s Service) Up(ctx context.Context, req UpRequest) (UpResult, error) {
	start := timeNow(s.Clock)
	plan, err := s.resolvePlan(ctx, overrides{
		Workdir:    req.Workdir,
		Venv:       req.Venv,
		Python:     req.Python,
		Manifest:   req.Manifest,
		Entrypoint: req.Entrypoint,
		Args:       req.Args,
		IndexURL:   req.IndexURL,
		EnvFile:    req.EnvFile,
	})
	if err != nil {
		return UpResult{}, err
	}
	created, err := s.provision(ctx, plan, req.SkipPipUpgrade)
	if err != nil {
		return UpResult{}, err
	}
	env, err := s.launchEnv(plan)
	if err != nil {
		return UpResult{}, err
	}
	log.Ctx(ctx).Info().Str("entrypoint", plan.Entrypoint).Msg("launching entry point")
	err = s.Launcher.Launch(ctx, ports.LaunchRequest{
		Workdir:    plan.Workdir,
		VenvDir:    plan.VenvDir,
		Entrypoint: plan.Entrypoint,
		Args:       plan.Args,
		ExtraEnv:   env,
	})
	if err != nil {
		return UpResult{}, err
	}
	log.Ctx(ctx).Info().Dur("elapsed", timeNow(s.Clock).Sub(start)).Msg("entry point exited")
	return UpResult{
		ProjectName: plan.ProjectName,
		VenvDir:     plan.VenvDir,
		Created:     created,
		Entrypoint:  plan.Entrypoint,
	}, nil
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now()
	}
	return clock()
}

package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Ensure provisions the environment without launching anything: create
// the venv when absent, upgrade pip, install the manifest. Steps run
// strictly in order and the first failure aborts the rest.
func (s Service) Ensure(ctx context.Context, req EnsureRequest) (EnsureResult, error) {
	plan, err := s.resolvePlan(ctx, overrides{
		Workdir:  req.Workdir,
		Venv:     req.Venv,
		Python:   req.Python,
		Manifest: req.Manifest,
		IndexURL: req.IndexURL,
	})
	if err != nil {
		return EnsureResult{}, err
	}
	created, err := s.provision(ctx, plan, req.SkipPipUpgrade)
	if err != nil {
		return EnsureResult{}, err
	}
	return EnsureResult{
		ProjectName: plan.ProjectName,
		VenvDir:     plan.VenvDir,
		Created:     created,
		Manifest:    plan.ManifestPath,
	}, nil
}

// provision runs the environment steps of the bootstrap contract:
// venv-exists check (idempotent create), pip self-upgrade, manifest
// install.
func (s Service) provision(ctx context.Context, plan bootstrapPlan, skipPipUpgrade bool) (bool, error) {
	created := false
	if s.Environment.Exists(plan.VenvDir) {
		log.Ctx(ctx).Debug().Str("venv", plan.VenvDir).Msg("environment already exists")
	} else {
		log.Ctx(ctx).Info().Str("venv", plan.VenvDir).Str("python", plan.Python).Msg("creating environment")
		if err := s.Environment.Create(ctx, plan.VenvDir, plan.Python); err != nil {
			return false, err
		}
		created = true
	}
	if skipPipUpgrade {
		log.Ctx(ctx).Debug().Msg("skipping pip self-upgrade")
	} else {
		log.Ctx(ctx).Info().Msg("upgrading pip")
		if err := s.Installer.UpgradePip(ctx, plan.VenvDir); err != nil {
			return created, err
		}
	}
	log.Ctx(ctx).Info().Str("manifest", plan.ManifestPath).Msg("installing dependencies")
	if err := s.Installer.InstallManifest(ctx, plan.VenvDir, plan.ManifestPath, plan.IndexURL); err != nil {
		return created, err
	}
	return created, nil
}

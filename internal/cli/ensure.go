package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pyboot/internal/app"
)

type ensureOptions struct {
	Workdir        string
	Venv           string
	Python         string
	Manifest       string
	IndexURL       string
	SkipPipUpgrade bool
}

func newEnsureCommand() *cobra.Command {
	opts := ensureOptions{}
	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Provision the environment without launching the entry point",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnsure(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Workdir, "workdir", "", "Working directory (defaults to the current directory)")
	cmd.Flags().StringVar(&opts.Venv, "venv", "", "Virtual environment directory, relative to the working directory")
	cmd.Flags().StringVar(&opts.Python, "python", "", "Base interpreter used to create the environment")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file (requirements.txt or pyproject.toml)")
	cmd.Flags().StringVar(&opts.IndexURL, "index-url", "", "Optional pip index URL override")
	cmd.Flags().BoolVar(&opts.SkipPipUpgrade, "skip-pip-upgrade", false, "Skip the pip self-upgrade step")

	_ = viper.BindPFlag("workdir", cmd.Flags().Lookup("workdir"))
	_ = viper.BindPFlag("venv", cmd.Flags().Lookup("venv"))
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("index_url", cmd.Flags().Lookup("index-url"))
	_ = viper.BindPFlag("skip_pip_upgrade", cmd.Flags().Lookup("skip-pip-upgrade"))

	return cmd
}

func runEnsure(ctx context.Context, cmd *cobra.Command, opts ensureOptions) error {
	service := newAppService()
	result, err := service.Ensure(ctx, app.EnsureRequest{
		Workdir:        resolveString(cmd, opts.Workdir, "workdir", "workdir"),
		Venv:           resolveString(cmd, opts.Venv, "venv", "venv"),
		Python:         resolveString(cmd, opts.Python, "python", "python"),
		Manifest:       resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		IndexURL:       resolveString(cmd, opts.IndexURL, "index_url", "index-url"),
		SkipPipUpgrade: resolveBool(cmd, opts.SkipPipUpgrade, "skip_pip_upgrade", "skip-pip-upgrade"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("ready: %s\n", result.VenvDir)
	return nil
}

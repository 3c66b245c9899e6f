package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pyboot/internal/app"
)

type upOptions struct {
	Workdir        string
	Venv           string
	Python         string
	Manifest       string
	Entrypoint     string
	IndexURL       string
	EnvFile        string
	SkipPipUpgrade bool
}

func newUpCommand() *cobra.Command {
	opts := upOptions{}
	cmd := &cobra.Command{
		Use:   "up [-- entry point args]",
		Short: "Bootstrap the environment and launch the entry point",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUp(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Workdir, "workdir", "", "Working directory (defaults to the current directory)")
	cmd.Flags().StringVar(&opts.Venv, "venv", "", "Virtual environment directory, relative to the working directory")
	cmd.Flags().StringVar(&opts.Python, "python", "", "Base interpreter used to create the environment")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file (requirements.txt or pyproject.toml)")
	cmd.Flags().StringVar(&opts.Entrypoint, "entrypoint", "", "Entry point file to launch")
	cmd.Flags().StringVar(&opts.IndexURL, "index-url", "", "Optional pip index URL override")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "Env file loaded into the entry point's environment")
	cmd.Flags().BoolVar(&opts.SkipPipUpgrade, "skip-pip-upgrade", false, "Skip the pip self-upgrade step")

	_ = viper.BindPFlag("workdir", cmd.Flags().Lookup("workdir"))
	_ = viper.BindPFlag("venv", cmd.Flags().Lookup("venv"))
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("entrypoint", cmd.Flags().Lookup("entrypoint"))
	_ = viper.BindPFlag("index_url", cmd.Flags().Lookup("index-url"))
	_ = viper.BindPFlag("env_file", cmd.Flags().Lookup("env-file"))
	_ = viper.BindPFlag("skip_pip_upgrade", cmd.Flags().Lookup("skip-pip-upgrade"))

	return cmd
}

func runUp(ctx context.Context, cmd *cobra.Command, opts upOptions, args []string) error {
	service := newAppService()
	result, err := service.Up(ctx, app.UpRequest{
		Workdir:        resolveString(cmd, opts.Workdir, "workdir", "workdir"),
		Venv:           resolveString(cmd, opts.Venv, "venv", "venv"),
		Python:         resolveString(cmd, opts.Python, "python", "python"),
		Manifest:       resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Entrypoint:     resolveString(cmd, opts.Entrypoint, "entrypoint", "entrypoint"),
		Args:           args,
		IndexURL:       resolveString(cmd, opts.IndexURL, "index_url", "index-url"),
		EnvFile:        resolveString(cmd, opts.EnvFile, "env_file", "env-file"),
		SkipPipUpgrade: resolveBool(cmd, opts.SkipPipUpgrade, "skip_pip_upgrade", "skip-pip-upgrade"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("exited: %s\n", result.Entrypoint)
	return nil
}

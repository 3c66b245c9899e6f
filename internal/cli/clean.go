package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pyboot/internal/app"
)

type cleanOptions struct {
	Workdir string
	Venv    string
}

func newCleanCommand() *cobra.Command {
	opts := cleanOptions{}
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the virtual environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Workdir, "workdir", "", "Working directory (defaults to the current directory)")
	cmd.Flags().StringVar(&opts.Venv, "venv", "", "Virtual environment directory, relative to the working directory")
	_ = viper.BindPFlag("workdir", cmd.Flags().Lookup("workdir"))
	_ = viper.BindPFlag("venv", cmd.Flags().Lookup("venv"))
	return cmd
}

func runClean(ctx context.Context, cmd *cobra.Command, opts cleanOptions) error {
	service := newAppService()
	result, err := service.Clean(ctx, app.CleanRequest{
		Workdir: resolveString(cmd, opts.Workdir, "workdir", "workdir"),
		Venv:    resolveString(cmd, opts.Venv, "venv", "venv"),
	})
	if err != nil {
		return err
	}
	if result.Removed {
		fmt.Printf("removed: %s\n", result.VenvDir)
	} else {
		fmt.Printf("nothing to remove: %s\n", result.VenvDir)
	}
	return nil
}

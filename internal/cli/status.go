package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pyboot/internal/app"
	"pyboot/internal/types"
)

type statusOptions struct {
	Workdir  string
	Venv     string
	Manifest string
}

func newStatusCommand() *cobra.Command {
	opts := statusOptions{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report environment and requirement state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Workdir, "workdir", "", "Working directory (defaults to the current directory)")
	cmd.Flags().StringVar(&opts.Venv, "venv", "", "Virtual environment directory, relative to the working directory")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file (requirements.txt or pyproject.toml)")

	_ = viper.BindPFlag("workdir", cmd.Flags().Lookup("workdir"))
	_ = viper.BindPFlag("venv", cmd.Flags().Lookup("venv"))
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))

	return cmd
}

func runStatus(ctx context.Context, cmd *cobra.Command, opts statusOptions) error {
	service := newAppService()
	result, err := service.Status(ctx, app.StatusRequest{
		Workdir:  resolveString(cmd, opts.Workdir, "workdir", "workdir"),
		Venv:     resolveString(cmd, opts.Venv, "venv", "venv"),
		Manifest: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
	})
	if err != nil {
		return err
	}
	if !result.Exists {
		fmt.Printf("environment: absent (%s)\n", result.VenvDir)
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("environment does not exist")
	}
	fmt.Printf("environment: %s (python %s)\n", result.VenvDir, result.PythonVersion)
	for _, status := range result.Requirements {
		switch status.State {
		case types.RequirementStateSatisfied:
			fmt.Printf("  ok       %s %s\n", status.Requirement.Name, status.Installed)
		case types.RequirementStateMissing:
			fmt.Printf("  missing  %s %s\n", status.Requirement.Name, status.Requirement.Specifier)
		case types.RequirementStateMismatch:
			fmt.Printf("  mismatch %s %s (installed %s)\n", status.Requirement.Name, status.Requirement.Specifier, status.Installed)
		}
	}
	if result.Unsatisfied > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d requirement(s) unsatisfied", result.Unsatisfied))
	}
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "drtplanner",
		Short:        "DRT budget and scenario simulation engine",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(budgetCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(scenariosCmd())
	rootCmd.AddCommand(blendCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func budgetCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "budget [project-path]",
		Short: "Compute the monthly operating budget, ROI and projections",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBudget(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of tables")
	return cmd
}

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [project-path]",
		Short: "Compare the project's saved budget variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCompare(args[0])
		},
	}
}

func scenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios [project-path]",
		Short: "Compare the selected operating scenarios side by side",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScenarios(args[0])
		},
	}
}

func blendCmd() *cobra.Command {
	var (
		normalize bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "blend [project-path]",
		Short: "Blend catalog scenarios into a hybrid plan using the project weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlend(args[0], normalize, cmd.Flags().Changed("normalize"), asJSON)
		},
	}

	cmd.Flags().BoolVar(&normalize, "normalize", false, "rescale weights to total 100 before blending")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of tables")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a DRT project without computing figures",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var (
		port      int
		configDir string
	)

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Serve budget and scenario figures over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			portOverride := 0
			if cmd.Flags().Changed("port") {
				portOverride = port
			}
			return runServe(cmd.Context(), args[0], configDir, portOverride)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port (overrides config)")
	cmd.Flags().StringVar(&configDir, "config-dir", "", "directory holding drtplanner.yaml (default: project path)")
	return cmd
}

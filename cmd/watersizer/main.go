package main

import (
	"os"

	"github.com/ChicagoDave/watersizer/internal/config"
	"github.com/ChicagoDave/watersizer/internal/logger"
	"github.com/spf13/cobra"
)

// options carries global flags and environment configuration to commands.
type options struct {
	presetsPath string
	jsonOutput  bool
	cfg         *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "watersizer",
		Short: "Rural water-supply and solar pumping sizing engine",
		Long: `watersizer sizes a rural water-supply scheme from a project directory
containing scheme.yaml: demand projection, reservoir volumes, pipe hydraulics,
solar PV array and a linear network pressure profile.

Environment Variables:
  WATERSIZER_LOG_LEVEL     debug, info, warn, error (default: warn)
  WATERSIZER_LOG_FORMAT    text, json (default: text)
  WATERSIZER_PRESETS       preset override file (YAML)
  WATERSIZER_SCHEME_FILE   scheme file name (default: scheme.yaml)
  WATERSIZER_MIN_PRESSURE  minimum residual network pressure in m (default: 10)`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logger.Init(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.presetsPath, "presets", "", "Preset override file (overrides WATERSIZER_PRESETS)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output JSON instead of a text report")

	rootCmd.AddCommand(calculateCmd(opts))
	rootCmd.AddCommand(validateCmd(opts))
	rootCmd.AddCommand(networkCmd(opts))
	rootCmd.AddCommand(curveCmd(opts))
	rootCmd.AddCommand(presetsCmd(opts))

	return rootCmd
}

func calculateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "calculate [project-path]",
		Short: "Size demand, reservoir, main pipe and solar array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd.OutOrStdout(), opts, args[0])
		},
	}
}

func validateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scheme without running the engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), opts, args[0])
		},
	}
}

func networkCmd(opts *options) *cobra.Command {
	var initialHead float64

	cmd := &cobra.Command{
		Use:   "network [project-path]",
		Short: "Propagate pressure along the distribution segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var head *float64
			if cmd.Flags().Changed("initial-head") {
				head = &initialHead
			}
			return runNetwork(cmd.OutOrStdout(), opts, args[0], head)
		},
	}

	cmd.Flags().Float64Var(&initialHead, "initial-head", 0, "Initial head in m (default: scheme network.initial_head or geometric height)")
	return cmd
}

func curveCmd(opts *options) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "curve [project-path]",
		Short: "Print the system curve of the main pipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurve(cmd.OutOrStdout(), opts, args[0], steps)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 10, "Number of curve intervals")
	return cmd
}

func presetsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Print the active preset tables as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPresets(cmd.OutOrStdout(), opts)
		},
	}
}

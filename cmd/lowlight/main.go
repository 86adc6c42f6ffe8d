package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/lowlight-enhancer/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "lowlight [image paths...]",
		Short: "Brighten and sharpen the dark regions of photos",
		Long: `lowlight detects dark regions of an image (luma below a threshold),
equalizes and sharpens them, and leaves well-lit pixels untouched.

Environment variables:
  LOWLIGHT_THRESHOLD    luma threshold for dark pixels (default 80)
  LOWLIGHT_WORKERS      files processed concurrently
  LOWLIGHT_OUTPUT_DIR   output directory (default: next to each input)
  LOWLIGHT_LOG_LEVEL    debug, info, warn, error`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides "+config.EnvLogLevel+")")

	enhanceCmd := newEnhanceCmd(&logLevel)
	root.AddCommand(enhanceCmd, newServeCmd(&logLevel), newVersionCmd())

	// Bare `lowlight photo.jpg` behaves like `lowlight enhance photo.jpg`.
	root.Args = enhanceCmd.Args
	root.RunE = enhanceCmd.RunE
	root.Flags().AddFlagSet(enhanceCmd.Flags())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lowlight %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}

// loadConfig reads the environment and applies the --log-level override.
func loadConfig(logLevel string) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

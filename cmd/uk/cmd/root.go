// Package cmd implements the uk command tree.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/utilkit/internal/config"
	"github.com/pengelbrecht/utilkit/internal/logging"
	"github.com/pengelbrecht/utilkit/internal/styles"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var (
	rootConfigPath string
	rootNoColor    bool
	rootVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "uk",
	Short: "Calculator and string utilities",
	Long: `uk exposes a small calculator and a set of string helpers.

Run single operations with "uk calc" and "uk str", see everything at once
with "uk demo", or explore interactively with "uk repl".

Examples:
  uk calc pow 2 8
  uk calc sub -- 5 -3
  uk str reverse "Hello World"
  uk str split "a,b,,c" ,
  uk demo --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnv(".env"); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		logging.Setup(rootVerbose)
		slog.Debug("command start", "command", cmd.CommandPath(), "args", args)
		setupColor(nil)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "config file (default $UK_CONFIG or ./.utilkit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the effective configuration.
func loadConfig() (config.Config, string, error) {
	path := config.Path(rootConfigPath)
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return config.Config{}, path, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	slog.Debug("config loaded", "path", path)
	return cfg, path, nil
}

// setupColor enables styling unless --no-color, NO_COLOR or the display
// config turn it off.
func setupColor(display *config.DisplayConfig) {
	styles.SetEnabled(colorEnabled(display))
}

func colorEnabled(display *config.DisplayConfig) bool {
	return !rootNoColor && styles.ColorFromEnv() && display.IsColorEnabled()
}

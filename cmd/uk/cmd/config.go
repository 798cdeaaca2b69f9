package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pengelbrecht/utilkit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the uk config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Long: `Write a config file with default values.

The file goes to --config, $UK_CONFIG or ./.utilkit.yaml. A .json extension
writes JSON, anything else YAML.

Examples:
  uk config init
  uk config init --config uk.json --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var (
	configInitForce bool
	configShowJSON  bool
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output as JSON")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.Path(rootConfigPath)

	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}

	if err := config.Save(path, effective(config.Default())); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = effective(cfg)

	out := cmd.OutOrStdout()
	if configShowJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// effective fills every optional field with its resolved value.
func effective(cfg config.Config) config.Config {
	text := cfg.Showcase.GetText()
	palindrome := cfg.Showcase.GetPalindrome()
	email := cfg.Showcase.GetEmail()
	color := cfg.Display.IsColorEnabled()
	width := cfg.Display.GetWidth()

	return config.Config{
		Version: cfg.Version,
		Showcase: &config.ShowcaseConfig{
			Text:       &text,
			Palindrome: &palindrome,
			Email:      &email,
		},
		Display: &config.DisplayConfig{
			Color: &color,
			Width: &width,
		},
	}
}

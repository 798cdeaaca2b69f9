package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultVersion  = 1
	DefaultFileName = ".utilkit.yaml"

	// EnvPath overrides the config file location.
	EnvPath = "UK_CONFIG"

	// Default showcase inputs.
	DefaultText       = "Hello World"
	DefaultPalindrome = "racecar"
	DefaultEmail      = "test@example.com"

	// Default and allowed display widths.
	DefaultWidth = 60
	MinWidth     = 40
	MaxWidth     = 200
)

// Config defines project configuration stored in .utilkit.yaml (or .json).
type Config struct {
	Version  int             `json:"version" yaml:"version"`
	Showcase *ShowcaseConfig `json:"showcase,omitempty" yaml:"showcase,omitempty"`
	Display  *DisplayConfig  `json:"display,omitempty" yaml:"display,omitempty"`
}

// ShowcaseConfig holds the inputs fed to the demo report.
type ShowcaseConfig struct {
	// Text is run through every string helper (default "Hello World").
	Text *string `json:"text,omitempty" yaml:"text,omitempty"`

	// Palindrome is checked with IsPalindrome (default "racecar").
	Palindrome *string `json:"palindrome,omitempty" yaml:"palindrome,omitempty"`

	// Email is checked with IsValidEmail (default "test@example.com").
	Email *string `json:"email,omitempty" yaml:"email,omitempty"`
}

// GetText returns the showcase text.
func (c *ShowcaseConfig) GetText() string {
	if c == nil || c.Text == nil {
		return DefaultText
	}
	return *c.Text
}

// GetPalindrome returns the palindrome candidate.
func (c *ShowcaseConfig) GetPalindrome() string {
	if c == nil || c.Palindrome == nil {
		return DefaultPalindrome
	}
	return *c.Palindrome
}

// GetEmail returns the email candidate.
func (c *ShowcaseConfig) GetEmail() string {
	if c == nil || c.Email == nil {
		return DefaultEmail
	}
	return *c.Email
}

// DisplayConfig holds output settings.
type DisplayConfig struct {
	// Color enables styled output (default true).
	Color *bool `json:"color,omitempty" yaml:"color,omitempty"`

	// Width is the box width for rendered reports (default 60).
	Width *int `json:"width,omitempty" yaml:"width,omitempty"`
}

// IsColorEnabled returns whether styled output is enabled (default true).
func (c *DisplayConfig) IsColorEnabled() bool {
	if c == nil || c.Color == nil {
		return true
	}
	return *c.Color
}

// GetWidth returns the report width (default 60).
func (c *DisplayConfig) GetWidth() int {
	if c == nil || c.Width == nil {
		return DefaultWidth
	}
	return *c.Width
}

// Validate checks that display values are within supported ranges.
func (c *DisplayConfig) Validate() error {
	if c == nil || c.Width == nil {
		return nil
	}
	if *c.Width < MinWidth || *c.Width > MaxWidth {
		return fmt.Errorf("width must be between %d and %d, got %d", MinWidth, MaxWidth, *c.Width)
	}
	return nil
}

// Default returns the default config.
func Default() Config {
	return Config{Version: DefaultVersion}
}

// Path resolves the config file location: an explicit path wins, then
// UK_CONFIG, then .utilkit.yaml in the working directory.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultFileName
}

// LoadEnv reads KEY=value pairs from the given .env files into the process
// environment. Missing files are ignored and existing variables are kept.
func LoadEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(path, data)
}

// LoadOrDefault reads config from disk, returning defaults if the file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(path, data)
}

// Save writes a config to disk in the format implied by the file extension.
func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(cfg, "", "  ")
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if err := c.Display.Validate(); err != nil {
		return fmt.Errorf("invalid display config: %w", err)
	}
	return nil
}

func parse(path string, data []byte) (Config, error) {
	var cfg Config
	if isJSON(path) {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for spectrabench. Nothing in here changes
// the computed numbers; config only steers output and verbosity.
type Config struct {
	// Output format (text, json, both)
	Format string `mapstructure:"format"`

	// Indent JSON output
	Pretty bool `mapstructure:"pretty"`

	// Policy file path (empty means search standard locations)
	PolicyFile string `mapstructure:"policy_file"`

	// Verbose output
	Verbose bool `mapstructure:"verbose"`

	// Debug mode
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns the built-in defaults, which reproduce the plain
// text rollup with no policy checks.
func DefaultConfig() *Config {
	return &Config{
		Format:  "text",
		Pretty:  true,
		Verbose: false,
		Debug:   false,
	}
}

// Load loads configuration with the following precedence (lowest to highest):
// 1. Default values
// 2. Config file (~/.spectrabench.yaml or ./spectrabench.yaml)
// 3. Environment variables (SPECTRABENCH_*)
// 4. CLI flags (handled by caller)
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile loads configuration from a specific file path.
// If path is empty, it searches for config in standard locations.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("pretty", defaults.Pretty)
	v.SetDefault("policy_file", "")
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("debug", defaults.Debug)

	v.SetConfigName("spectrabench")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Search current directory, then home, then XDG config dir
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}

		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, "spectrabench"))
		}
	}

	v.SetEnvPrefix("SPECTRABENCH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"both": true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format: %s (must be text, json, or both)", c.Format)
	}

	return nil
}

// GenerateSampleConfig generates a sample configuration file content.
func GenerateSampleConfig() string {
	return `# spectrabench configuration
# Save this file as ~/.spectrabench.yaml or ./spectrabench.yaml

# Output format: text, json, or both
format: text

# Indent JSON output
pretty: true

# Policy file for CI ceilings (default: search for
# .spectrabench-policy.yaml upward from the current directory)
# policy_file: .spectrabench-policy.yaml

# Enable verbose output
verbose: false

# Enable debug mode
debug: false
`
}

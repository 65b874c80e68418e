// Package config loads and persists CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Default analysis bounds applied when the matching flag is not set.
	MinPercentage float64 `mapstructure:"min_percentage" yaml:"min_percentage"`
	MinCount      int     `mapstructure:"min_count" yaml:"min_count"`
	Limit         int     `mapstructure:"limit" yaml:"limit"`

	// Discovery budget.
	DiscoverMaxFields       int `mapstructure:"discover_max_fields" yaml:"discover_max_fields"`
	DiscoverMaxCombinations int `mapstructure:"discover_max_combinations" yaml:"discover_max_combinations"`

	// Comparison.
	ChangeThreshold float64 `mapstructure:"change_threshold" yaml:"change_threshold"`

	// Tree rendering.
	TreeTop int `mapstructure:"tree_top" yaml:"tree_top"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.dataspot/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataspot")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATASPOT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("min_percentage", 0.0)
	v.SetDefault("min_count", 0)
	v.SetDefault("limit", 0)
	v.SetDefault("discover_max_fields", 3)
	v.SetDefault("discover_max_combinations", 10)
	v.SetDefault("change_threshold", 0.15)
	v.SetDefault("tree_top", 5)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataspot")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

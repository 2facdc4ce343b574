// Package config loads process configuration and suite manifests.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultThreshold is the maximum acceptable mean absolute error for a
// pass when a case does not set its own.
const DefaultThreshold = 0.0003

// Config is the process-level configuration for the harness CLI.
type Config struct {
	DataRoot  string  `mapstructure:"data_root"`
	Manifest  string  `mapstructure:"manifest"`
	Threshold float64 `mapstructure:"threshold"`
	LogLevel  string  `mapstructure:"log_level"`
	LogFormat string  `mapstructure:"log_format"`
}

// LoadOptions carries the flag set and optional config file for Load.
type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DataRoot:  ".",
		Manifest:  "suite.yaml",
		Threshold: DefaultThreshold,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// RegisterFlags declares the persistent CLI flags.
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("data-root", defaults.DataRoot, "Directory holding idx reference data")
	fs.String("manifest", defaults.Manifest, "Suite manifest file (relative to data root)")
	fs.Float64("threshold", defaults.Threshold, "Default maximum acceptable mean absolute error for a pass")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("log-format", defaults.LogFormat, "Log format (console|json)")
}

// Load merges defaults, an optional config file, environment variables
// (prefix VERDICT) and CLI flags, in ascending priority.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("VERDICT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Threshold <= 0 {
		return Config{}, fmt.Errorf("threshold must be > 0, got %g", cfg.Threshold)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("data_root", c.DataRoot)
	v.SetDefault("manifest", c.Manifest)
	v.SetDefault("threshold", c.Threshold)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("log_format", c.LogFormat)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("data_root", "data-root")
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("log_format", "log-format")
}

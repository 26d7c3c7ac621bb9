package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// Config represents the configuration of the segtree command.
type Config struct {
	Prompt string `yaml:"prompt"` // input prompt, shown on terminals only
	Color  bool   `yaml:"color"`  // colorize results and errors
	Trace  string `yaml:"trace"`  // trace level: Error, Info or Debug
	Input  string `yaml:"input"`  // number file to load as the initial array
}

// Default returns the configuration used without a configuration file.
func Default() *Config {
	return &Config{
		Prompt: "> ",
		Color:  true,
		Trace:  "Error",
	}
}

// LoadConfig reads a YAML configuration file from the specified path.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// TraceLevel returns the configured trace level.
func (cfg *Config) TraceLevel() tracing.TraceLevel {
	return tracing.TraceLevelFromString(cfg.Trace)
}

// Validate checks the configuration values. An empty trace level is reset to
// the default level Error.
func (cfg *Config) Validate() error {
	switch strings.ToLower(cfg.Trace) {
	case "":
		cfg.Trace = Default().Trace
		return nil
	case "error", "info", "debug":
		return nil
	}
	return fmt.Errorf("unknown trace level %q", cfg.Trace)
}

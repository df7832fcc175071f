// Package config loads endpointview settings from ~/.endpointview/config.yaml and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/endpointview/internal/pagination"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// EnvConfig names a config file that replaces the default location.
const EnvConfig = "ENDPOINTVIEW_CONFIG"

const (
	configDirName  = ".endpointview"
	configFileName = "config.yaml"
)

// Validation errors.
var (
	ErrInvalidFormat    = errors.New("output.format must be one of table, json, yaml")
	ErrInvalidPageSize  = errors.New("output.page_size must be between 1 and 1000")
	ErrInvalidLogFormat = errors.New("logging.format must be json or console")
)

// Config is the full endpointview configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how tables are rendered.
type OutputConfig struct {
	// Format is the default output format: table, json or yaml.
	Format string `yaml:"format"`
	// PageSize is the default number of rows per page.
	PageSize int `yaml:"page_size"`
	// Color enables Lip Gloss styling when the terminal supports it.
	Color bool `yaml:"color"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			Format:   FormatTable,
			PageSize: pagination.DefaultPageSize,
			Color:    true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultPath returns the config file location, honouring ENDPOINTVIEW_CONFIG.
func DefaultPath(lookupEnv func(string) (string, bool)) (string, error) {
	if p, ok := lookupEnv(EnvConfig); ok && p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load builds a Config from defaults, the YAML file at path (when it exists)
// and environment overrides, then validates it. A missing file is not an error
// unless required is set.
func Load(path string, required bool, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()

	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			if err := ShallowMergeYAML(cfg, path); err != nil {
				return nil, err
			}
		case errors.Is(statErr, os.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("reading config %s: %w", path, statErr)
		}
	}

	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section for unsupported values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.Format)
	}
	if c.Output.PageSize < pagination.MinPageSize || c.Output.PageSize > pagination.MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Output.PageSize)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}

// Save writes c as YAML to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

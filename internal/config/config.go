// Package config loads the optional fssimple.yaml file controlling CLI
// output defaults. Flags always win over the file; the file wins over
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the file looked up in the working directory.
const ConfigFileName = "fssimple.yaml"

// Config holds CLI output defaults.
type Config struct {
	// Color controls styled output: "auto" (default), "always", or "never".
	Color string `yaml:"color,omitempty"`

	// Long includes size and modification time in tree output.
	Long bool `yaml:"long,omitempty"`

	// Relative prints query results relative to the resolved root.
	Relative bool `yaml:"relative,omitempty"`
}

// Load reads ConfigFileName from dir. A missing file yields
// ErrConfigNotFound; callers treat that as "use defaults".
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("invalid color mode %q (expected auto, always, or never)", c.Color)
}

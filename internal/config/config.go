// Package config loads the provider configuration the rewrite orchestrator
// consumes. The file is owned by the settings surface; this package only
// reads it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/promptlint/promptlint/internal/llm"
)

// FileName is the project-local configuration file.
const FileName = ".promptlint.yaml"

// Config is the on-disk configuration shape.
type Config struct {
	Providers []llm.ProviderConfig `yaml:"providers"`
}

// Load reads and parses a configuration file. API keys support ${ENV}
// expansion so the file itself never needs to hold secrets.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration bytes and expands environment references in
// API keys.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for i := range cfg.Providers {
		cfg.Providers[i].APIKey = os.ExpandEnv(cfg.Providers[i].APIKey)
	}

	return &cfg, nil
}

// LoadDefault searches the standard locations: an explicit path, the working
// directory, $XDG_CONFIG_HOME/promptlint/config.yaml, then
// $HOME/.promptlint.yaml. A missing file yields an empty configuration, not
// an error; the orchestrator reports the no-provider case itself.
func LoadDefault(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return &Config{}, nil
}

func searchPaths() []string {
	paths := []string{FileName}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "promptlint", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "promptlint", "config.yaml"))
		paths = append(paths, filepath.Join(home, FileName))
	}

	return paths
}

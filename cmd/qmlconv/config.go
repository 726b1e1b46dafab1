package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"qmlutil/schema"
)

// Config tunes the conversion: keys the heuristic typer must leave as text
// and the namespace prefix the schema uses for its own type references.
type Config struct {
	SkipKeys  []string `yaml:"skip_keys"`
	Namespace string   `yaml:"namespace"`
}

// loadConfig loads and parses a YAML config file from the given path.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return parseConfig(data)
}

// parseConfig parses YAML data into a Config and applies defaults.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if cfg.Namespace == "" {
		cfg.Namespace = schema.DefaultNamespace
	}

	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{Namespace: schema.DefaultNamespace}
}

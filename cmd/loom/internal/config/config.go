// Package config loads the loom.yaml project file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the expected config file name in the project root.
const FileName = "loom.yaml"

// Config is the project configuration. CLI flags take precedence over
// every field here.
type Config struct {
	Dev DevConfig `yaml:"dev"`
}

// DevConfig configures the gallery dev server.
type DevConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Dir is the gallery root served by the dev server.
	Dir string `yaml:"dir"`
	// DebounceMS is the watcher quiet period in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`
}

// Default returns the configuration used when no loom.yaml exists.
func Default() *Config {
	return &Config{
		Dev: DevConfig{
			Host:       "localhost",
			Port:       5173,
			Dir:        ".",
			DebounceMS: 100,
		},
	}
}

// Load reads loom.yaml from dir, filling unset fields with defaults. A
// missing file returns the defaults without error.
func Load(dir string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	d := Default()
	if cfg.Dev.Host == "" {
		cfg.Dev.Host = d.Dev.Host
	}
	if cfg.Dev.Port == 0 {
		cfg.Dev.Port = d.Dev.Port
	}
	if cfg.Dev.Dir == "" {
		cfg.Dev.Dir = d.Dev.Dir
	}
	if cfg.Dev.DebounceMS == 0 {
		cfg.Dev.DebounceMS = d.Dev.DebounceMS
	}
	return cfg, nil
}

// Package config loads the optional mvvmgen.json project configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the mvvmgen.json configuration file.
type Config struct {
	// Dir is the root directory to analyze.
	Dir string `json:"dir"`
	// Patterns are the package patterns passed to the loader.
	Patterns []string `json:"patterns"`
	// Watch and Exclude control which file changes retrigger generation.
	Watch   []string `json:"watch"`
	Exclude []string `json:"exclude"`
}

const fileName = "mvvmgen.json"

// Load reads mvvmgen.json from dir, or returns defaults when the file does
// not exist.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, fileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := &Config{Dir: dir}
		applyDefaults(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Dir == "" {
		cfg.Dir = dir
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = []string{"./..."}
	}
	if len(cfg.Watch) == 0 {
		cfg.Watch = []string{"*.go", "**/*.go"}
	}
	if len(cfg.Exclude) == 0 {
		cfg.Exclude = []string{"*_test.go", "*.g.go", ".git", "vendor", "node_modules"}
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// HostConfig is the optional per-user configuration for the spec runner.
type HostConfig struct {
	// Nvim overrides the editor binary (default "nvim").
	Nvim string `yaml:"nvim"`
	// Timeout bounds a run, as a Go duration string. Empty or "0" means none.
	Timeout string `yaml:"timeout"`
	// ExtraArgs are additional nvim arguments inserted before -c.
	ExtraArgs []string `yaml:"extra_args"`
	// Env is overlaid on the child environment.
	Env map[string]string `yaml:"env"`
}

// ReadHostConfig loads SPECRUN_CONFIG, or <UserConfigDir>/specrun/config.yaml.
// A missing file is not an error; the zero config is returned.
func ReadHostConfig() (HostConfig, string, error) {
	var cfg HostConfig
	cfg.Env = map[string]string{}
	path := strings.TrimSpace(os.Getenv("SPECRUN_CONFIG"))
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "specrun", "config.yaml")
		} else if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "specrun", "config.yaml")
		}
	}
	if strings.TrimSpace(path) == "" {
		return cfg, "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, filepath.Dir(path), nil
		}
		return cfg, filepath.Dir(path), err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, filepath.Dir(path), err
	}
	if cfg.Env == nil {
		cfg.Env = map[string]string{}
	}
	return cfg, filepath.Dir(path), nil
}

// RunTimeout parses the configured timeout. Zero means run without one.
func (c HostConfig) RunTimeout() (time.Duration, error) {
	t := strings.TrimSpace(c.Timeout)
	if t == "" || t == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(t)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

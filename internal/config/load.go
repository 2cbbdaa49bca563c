package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv and DefaultPath.
const (
	EnvConfig = "PRACLAB_CONFIG"
	EnvDir    = "PRACLAB_DIR"
	EnvTheme  = "PRACLAB_THEME"
	EnvLog    = "PRACLAB_LOG"
)

// Parse decodes a single YAML document, rejecting unknown fields.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the config at path, or the default location when path is
// empty, then applies environment overrides. A missing file is only an
// error when it was named by path or PRACLAB_CONFIG.
func Resolve(path string) (Config, error) {
	explicit := path != "" || os.Getenv(EnvConfig) != ""
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	loaded, err := Load(path)
	switch {
	case err == nil:
		cfg = loaded
	case !explicit && errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, err
	}

	ApplyEnv(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PRACLAB_* variables that are set.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvDir); v != "" {
		cfg.Dir = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvLog); v != "" {
		cfg.LogFile = v
	}
}

// DefaultPath resolves the config file path in priority order:
// 1. PRACLAB_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/praclab/config.yaml
// 3. ~/.config/praclab/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "praclab", "config.yaml"), nil
}

// Package config loads praclab settings from YAML and the environment.
package config

import (
	"time"

	"github.com/abhisek/praclab/internal/quiz"
)

// Supported config schema version.
const CurrentVersion = 1

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Defaults applied by Normalize.
const (
	DefaultDir           = "./questions"
	DefaultTheme         = ThemeDark
	DefaultFeedbackDelay = time.Second
)

// Config holds the settings of one praclab run.
type Config struct {
	Version int `yaml:"version"`

	// Dir is the directory the question sets are listed from.
	Dir string `yaml:"dir"`

	// Theme is the initial palette, dark or light.
	Theme string `yaml:"theme"`

	// FeedbackDelay is how long the success banner stays up after a
	// correct answer.
	FeedbackDelay time.Duration `yaml:"feedback_delay"`

	// ExplanationPlaceholder replaces missing explanations.
	ExplanationPlaceholder string `yaml:"explanation_placeholder"`

	// LogFile receives debug logs. Empty disables logging.
	LogFile string `yaml:"log_file"`
}

// Default returns a normalized configuration with no file applied.
func Default() Config {
	var cfg Config
	Normalize(&cfg)
	return cfg
}

// Normalize fills unset fields with their defaults.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.FeedbackDelay == 0 {
		cfg.FeedbackDelay = DefaultFeedbackDelay
	}
	if cfg.ExplanationPlaceholder == "" {
		cfg.ExplanationPlaceholder = quiz.DefaultExplanation
	}
}

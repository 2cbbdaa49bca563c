package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized configuration.
// It returns a *ValidationError listing every problem found.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, format string, args ...any) {
		issues = append(issues, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.Version != CurrentVersion {
		add("version", "unsupported version %d (want %d)", cfg.Version, CurrentVersion)
	}
	if strings.TrimSpace(cfg.Dir) == "" {
		add("dir", "must not be blank")
	}
	switch cfg.Theme {
	case ThemeDark, ThemeLight:
	default:
		add("theme", "must be %q or %q, got %q", ThemeDark, ThemeLight, cfg.Theme)
	}
	if cfg.FeedbackDelay < 0 {
		add("feedback_delay", "must not be negative")
	}
	if strings.TrimSpace(cfg.ExplanationPlaceholder) == "" {
		add("explanation_placeholder", "must not be blank")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolateEnv clears every variable Resolve reads.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{EnvConfig, EnvDir, EnvTheme, EnvLog} {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, DefaultDir, cfg.Dir)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, time.Second, cfg.FeedbackDelay)
	assert.Equal(t, "No explanation available.", cfg.ExplanationPlaceholder)
	assert.Empty(t, cfg.LogFile)
	assert.NoError(t, Validate(&cfg))
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version: 1
dir: /srv/questions
theme: light
feedback_delay: 250ms
explanation_placeholder: Nothing here yet.
log_file: /tmp/praclab.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Version:                1,
		Dir:                    "/srv/questions",
		Theme:                  ThemeLight,
		FeedbackDelay:          250 * time.Millisecond,
		ExplanationPlaceholder: "Nothing here yet.",
		LogFile:                "/tmp/praclab.log",
	}, cfg)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "dir: sets\n"))
	require.NoError(t, err)
	assert.Equal(t, "sets", cfg.Dir)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, DefaultFeedbackDelay, cfg.FeedbackDelay)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown field", "dir: x\ncolour: red\n"},
		{"multiple documents", "dir: x\n---\ndir: y\n"},
		{"bad duration", "feedback_delay: soon\n"},
		{"wrong type", "version: [1]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestValidate_AggregatesIssues(t *testing.T) {
	cfg := Config{
		Version:                2,
		Dir:                    "  ",
		Theme:                  "neon",
		FeedbackDelay:          -time.Second,
		ExplanationPlaceholder: " ",
	}

	err := Validate(&cfg)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Issues))
	for _, issue := range verr.Issues {
		fields = append(fields, issue.Field)
	}
	assert.Equal(t, []string{"version", "dir", "theme", "feedback_delay", "explanation_placeholder"}, fields)
	assert.Contains(t, err.Error(), `theme: must be "dark" or "light", got "neon"`)
}

func TestValidationError_Empty(t *testing.T) {
	var err *ValidationError
	assert.Equal(t, "config validation failed", err.Error())
}

func TestResolve_MissingDefaultFile(t *testing.T) {
	isolateEnv(t)

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolve_MissingExplicitFile(t *testing.T) {
	isolateEnv(t)

	_, err := Resolve(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve_DefaultLocation(t *testing.T) {
	isolateEnv(t)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "praclab"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "praclab", "config.yaml"), []byte("theme: light\n"), 0o644))

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, cfg.Theme)
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, "dir: from-file\ntheme: dark\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvDir, "from-env")
	t.Setenv(EnvLog, "debug.log")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Dir)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, "debug.log", cfg.LogFile)
}

func TestResolve_ConfigFromEnvPath(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvConfig, writeConfig(t, "theme: light\nfeedback_delay: 2s\n"))

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, 2*time.Second, cfg.FeedbackDelay)
}

func TestResolve_MissingEnvPathFile(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Resolve("")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve_InvalidEnvTheme(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvTheme, "sepia")

	_, err := Resolve("")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDefaultPath(t *testing.T) {
	isolateEnv(t)
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "praclab", "config.yaml"), p)

	t.Setenv(EnvConfig, "/etc/praclab.yaml")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/praclab.yaml", p)
}

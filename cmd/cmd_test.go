package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/praclab/internal/questionset"
	"github.com/abhisek/praclab/internal/quiz"
)

func questionDir(t *testing.T, files map[string]string) *questionset.Dir {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return questionset.NewDir(dir)
}

func TestListSets(t *testing.T) {
	dir := questionDir(t, map[string]string{
		"a.csv":      "question,answer\nq1,a1\nq2,a2\n",
		"b.json":     "{",
		"readme.txt": "ignored",
	})

	var out bytes.Buffer
	require.NoError(t, listSets(context.Background(), &out, dir))

	lines := out.String()
	assert.Contains(t, lines, "a.csv\t2 questions\n")
	assert.Contains(t, lines, "b.json\terror: ")
	assert.NotContains(t, lines, "readme.txt")
}

func TestListSets_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listSets(context.Background(), &out, questionDir(t, nil)))
	assert.Contains(t, out.String(), "No question files found")
}

func TestCheckSet(t *testing.T) {
	dir := questionDir(t, map[string]string{
		"a.csv": "question,answer\nq1,a1\nq2\n,a3\n",
	})

	var out bytes.Buffer
	require.NoError(t, checkSet(context.Background(), &out, dir, "a.csv"))
	assert.Equal(t, "a.csv: 1 usable, 2 skipped\n"+
		"  line 3: expected 2 fields, got 1\n"+
		"  line 4: missing question\n", out.String())
}

func TestCheckSet_NoUsableRows(t *testing.T) {
	dir := questionDir(t, map[string]string{"a.csv": "question,answer\n,\n"})

	err := checkSet(context.Background(), &bytes.Buffer{}, dir, "a.csv")
	assert.ErrorIs(t, err, quiz.ErrNoRecords)
}

func TestResolveConfig_FlagsOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PRACLAB_CONFIG", "")
	t.Setenv("PRACLAB_DIR", "from-env")
	t.Setenv("PRACLAB_THEME", "")
	t.Setenv("PRACLAB_LOG", "")

	cmd := &cobra.Command{Use: "praclab"}
	cmd.Flags().String("dir", "", "")
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("theme", "", "")
	cmd.Flags().String("log", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--theme", "light"}))

	cfg, err := resolveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Dir)
	assert.Equal(t, "light", cfg.Theme)

	require.NoError(t, cmd.Flags().Parse([]string{"--dir", "from-flag"}))
	cfg, err = resolveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Dir)
}

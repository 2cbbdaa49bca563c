package questionset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeSet writes a question set file into dir and returns its identifier.
func writeSet(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	return name
}

func newReport() *Report {
	return &Report{placeholder: "No explanation available."}
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at fresh temp dirs and
// clears the --config flag so config discovery only sees what the test writes.
func isolate(t *testing.T) (home, cwd string) {
	t.Helper()
	home = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)

	orig := cfgFile
	cfgFile = ""
	t.Cleanup(func() { cfgFile = orig })
	return home, cwd
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".widgetmon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

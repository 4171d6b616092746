package cli_test

import (
	"bytes"
	"testing"

	"github.com/rshade/vgrid/internal/cli"
	"github.com/rshade/vgrid/internal/config"
)

// setupCLITest isolates the command from the user's configuration: VGRID_HOME
// points at a fresh directory, the working directory holds no project, and the
// global config is reset afterwards. It returns the VGRID_HOME directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	globalDir := t.TempDir()
	t.Setenv("VGRID_HOME", globalDir)
	t.Setenv("VGRID_PROJECT_DIR", "")
	t.Setenv("VGRID_LOG_LEVEL", "error")
	t.Setenv("VGRID_LOG_FORMAT", "")
	t.Setenv("VGRID_ITEM_MAX_WIDTH", "")
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		config.ResetGlobalConfigForTest()
		config.SetResolvedProjectDir("")
	})
	return globalDir
}

// executeRoot runs the root command with args as a fresh process would and
// returns everything it printed.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetGlobalConfigForTest()

	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vgrid/internal/source"
	"github.com/rshade/vgrid/pkg/version"
)

func TestVersionCmd(t *testing.T) {
	setupCLITest(t)

	output, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "vgrid "+version.GetVersion())
	assert.Contains(t, output, "commit")

	output, err = executeRoot(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.GetVersion(), strings.TrimSpace(output))
}

func TestRootVersionFlag(t *testing.T) {
	setupCLITest(t)

	output, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, output, "test")
}

func TestDemo_PlainFrame(t *testing.T) {
	globalDir := setupCLITest(t)

	output, err := executeRoot(t, "demo", "--plain", "--items", "50", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, output, "Item 1")
	assert.Contains(t, output, "Item 2")
	assert.NotContains(t, output, "Item 50", "rows below the first screen are not rendered")
	assert.Contains(t, output, "demo seed 7")

	assert.Contains(t, output, "Logging to", "interactive commands log to a file")
	_, statErr := os.Stat(filepath.Join(globalDir, "logs", "vgrid.log"))
	assert.NoError(t, statErr)
}

func TestDemo_ItemWidthFlag(t *testing.T) {
	setupCLITest(t)

	output, err := executeRoot(t, "demo", "--plain", "--items", "4", "--item-max-width", "18", "--gap", "0")
	require.NoError(t, err)

	var cardLine string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "╭") {
			cardLine = line
			break
		}
	}
	require.NotEmpty(t, cardLine, "no card border in output:\n%s", output)
	assert.Equal(t, 4, strings.Count(cardLine, "╭"), "80 cells hold four 18-cell cards")
}

func TestDemo_Empty(t *testing.T) {
	setupCLITest(t)

	output, err := executeRoot(t, "demo", "--plain", "--items", "0")
	require.NoError(t, err)
	assert.Contains(t, output, "0 items")
}

func TestDemo_InvalidFlags(t *testing.T) {
	setupCLITest(t)

	_, err := executeRoot(t, "demo", "--items", "-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--items")

	_, err = executeRoot(t, "demo", "extra")
	require.Error(t, err)
}

func TestDemo_LogFileFlag(t *testing.T) {
	setupCLITest(t)
	logFile := filepath.Join(t.TempDir(), "session", "demo.log")

	output, err := executeRoot(t, "--log-file", logFile, "demo", "--plain", "--items", "3")
	require.NoError(t, err)
	assert.Contains(t, output, "Logging to "+logFile)

	_, statErr := os.Stat(logFile)
	assert.NoError(t, statErr)
}

func TestBrowse_PlainFrame(t *testing.T) {
	setupCLITest(t)

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello world\nsecond line\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("secret\n"), 0o644))

	output, err := executeRoot(t, "browse", dir, "--plain")
	require.NoError(t, err)

	assert.Contains(t, output, "sub/")
	assert.Contains(t, output, "a.txt")
	assert.Contains(t, output, "hello world")
	assert.NotContains(t, output, ".hidden")

	output, err = executeRoot(t, "browse", dir, "--plain", "--hidden", "--preview-lines", "1")
	require.NoError(t, err)
	assert.Contains(t, output, ".hidden")
	assert.Contains(t, output, "hello world")
	assert.NotContains(t, output, "second line")
}

func TestBrowse_Errors(t *testing.T) {
	setupCLITest(t)

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := executeRoot(t, "browse", file, "--plain")
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrNotDirectory)

	_, err = executeRoot(t, "browse", filepath.Join(t.TempDir(), "missing"), "--plain")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = executeRoot(t, "browse", "a", "b")
	require.Error(t, err)
}

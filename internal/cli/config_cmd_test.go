package cli_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vgrid/internal/config"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigShow_Defaults(t *testing.T) {
	setupCLITest(t)

	output, err := executeRoot(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, output, "version: 1.0.0")
	assert.Contains(t, output, "item_max_width: 32")
	assert.Contains(t, output, "preview_lines: 8")
}

func TestConfigShow_JSON(t *testing.T) {
	setupCLITest(t)
	t.Setenv("VGRID_ITEM_MAX_WIDTH", "20")

	output, err := executeRoot(t, "config", "show", "--format", "json")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(output), &cfg), output)
	assert.Equal(t, 20, cfg.Grid.ItemMaxWidth, "environment overrides the file")
	assert.Equal(t, 1, cfg.Grid.Gap)
}

func TestConfigShow_ExplicitConfigFile(t *testing.T) {
	setupCLITest(t)
	path := writeConfigFile(t, t.TempDir(), "grid:\n  item_max_width: 48\n")

	output, err := executeRoot(t, "--config", path, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, output, "item_max_width: 48")
	assert.Contains(t, output, "gap: 1", "keys missing from the file keep their defaults")
}

func TestConfigShow_ProjectOverlay(t *testing.T) {
	globalDir := setupCLITest(t)
	writeConfigFile(t, globalDir, "browse:\n  preview_lines: 3\n  concurrency: 2\n")
	projectRoot := t.TempDir()
	writeConfigFile(t, filepath.Join(projectRoot, ".vgrid"),
		"grid:\n  item_max_width: 24\n  gap: 2\n  estimate_height: 5\n  scroll_step: 1\n")

	output, err := executeRoot(t, "--project-dir", projectRoot, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, output, "item_max_width: 24")
	assert.Contains(t, output, "preview_lines: 3")
}

func TestConfigShow_UnsupportedFormat(t *testing.T) {
	setupCLITest(t)

	_, err := executeRoot(t, "config", "show", "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestConfigValidate_Valid(t *testing.T) {
	setupCLITest(t)

	output, err := executeRoot(t, "config", "validate", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, output, "Configuration is valid")
	assert.Contains(t, output, "Item max width: 32")
	assert.Contains(t, output, "Project directory: (none)")
}

func TestConfigValidate_InvalidProjectOverlay(t *testing.T) {
	setupCLITest(t)
	projectRoot := t.TempDir()
	writeConfigFile(t, filepath.Join(projectRoot, ".vgrid"),
		"grid:\n  item_max_width: 24\n  gap: -1\n  estimate_height: 5\n  scroll_step: 1\n")

	_, err := executeRoot(t, "--project-dir", projectRoot, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestRoot_InvalidConfigFile(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "out of range", content: "grid:\n  item_max_width: 0\n", wantErr: config.ErrInvalidConfig},
		{name: "future version", content: "version: 2.0.0\n", wantErr: config.ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, t.TempDir(), tt.content)

			_, err := executeRoot(t, "--config", path, "config", "show")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "loading config")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoot_MissingConfigFile(t *testing.T) {
	setupCLITest(t)

	_, err := executeRoot(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "layout")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

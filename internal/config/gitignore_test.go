package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vgrid/internal/config"
)

func TestEnsureGitignore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		dir         func(base string) string
		existing    string
		wantCreated bool
		wantContent string
	}{
		{
			name:        "new project directory",
			dir:         func(base string) string { return base },
			wantCreated: true,
			wantContent: config.GitignoreContent(),
		},
		{
			name:        "missing directories are created",
			dir:         func(base string) string { return filepath.Join(base, "app", "nested", ".vgrid") },
			wantCreated: true,
			wantContent: config.GitignoreContent(),
		},
		{
			name:        "user rules are kept",
			dir:         func(base string) string { return base },
			existing:    "# mine\n*.secret\n",
			wantCreated: false,
			wantContent: "# mine\n*.secret\n",
		},
		{
			name:        "empty file is kept",
			dir:         func(base string) string { return base },
			existing:    "",
			wantCreated: false,
			wantContent: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := tt.dir(t.TempDir())
			path := filepath.Join(dir, ".gitignore")
			if !tt.wantCreated {
				require.NoError(t, os.WriteFile(path, []byte(tt.existing), 0o644))
			}

			created, err := config.EnsureGitignore(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, string(data))
		})
	}
}

func TestEnsureGitignore_SecondCallIsNoop(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	created, err := config.EnsureGitignore(dir)
	require.NoError(t, err)
	require.True(t, created)

	created, err = config.EnsureGitignore(dir)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestGitignoreContent_IgnoresLogsOnly(t *testing.T) {
	t.Parallel()

	rules := config.GitignoreContent()

	assert.Contains(t, rules, "logs/")
	assert.Contains(t, rules, "*.log")
	assert.NotContains(t, rules, "config.yaml", "project config must stay tracked")
}

func TestEnsureGitignore_UnwritableDirectory(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("directory permissions are not enforced on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	created, err := config.EnsureGitignore(dir)
	require.Error(t, err)
	assert.False(t, created)

	_, statErr := os.Stat(filepath.Join(dir, ".gitignore"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

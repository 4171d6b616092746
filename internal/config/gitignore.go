package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Session logs written under a project's .vgrid directory stay out of version
// control. config.yaml is shared with the project and stays tracked.
const projectIgnoreRules = `# vgrid project-local data (auto-generated)
# Config is tracked; session logs are not.
logs/
*.log
`

// GitignoreContent returns the rules written to a new .vgrid/.gitignore.
func GitignoreContent() string {
	return projectIgnoreRules
}

// EnsureGitignore writes .gitignore into the project data directory dir,
// creating dir when needed. A .gitignore that already exists is never
// touched. The result reports whether a file was written.
func EnsureGitignore(dir string) (bool, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("creating project data directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, ".gitignore")
	//nolint:gosec // .gitignore is meant to be readable by everyone with the checkout.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	switch {
	case errors.Is(err, os.ErrExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := f.WriteString(projectIgnoreRules); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", path, err)
	}
	return true, nil
}

package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentVersion is the schema version written by this build.
const CurrentVersion = "1.0.0"

// supportedVersions is the range of schema versions this build can read.
const supportedVersions = ">= 1.0.0, < 2.0.0"

// ErrUnsupportedVersion is returned for config files written by an
// incompatible release.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// CheckVersion verifies that a config schema version can be read. An empty
// version is treated as the current one.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version: %w", ErrUnsupportedVersion, version, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, version, supportedVersions)
	}
	return nil
}

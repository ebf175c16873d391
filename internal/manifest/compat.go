package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrIncompatible is returned when a template set requires a different CLI version.
var ErrIncompatible = errors.New("incompatible template set")

// CheckCompatible reports whether cliVersion satisfies the set's requires
// constraint. Development builds ("dev" or empty) accept every set.
func CheckCompatible(m *SetManifest, cliVersion string) error {
	if m.Requires == "" || cliVersion == "" || cliVersion == "dev" {
		return nil
	}

	constraint, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("%w %q: parsing requires %q: %v", ErrInvalid, m.Name, m.Requires, err)
	}
	v, err := parseSemver(cliVersion)
	if err != nil {
		return fmt.Errorf("parsing CLI version %q: %w", cliVersion, err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w %q: requires %s, running %s", ErrIncompatible, m.Name, m.Requires, v)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

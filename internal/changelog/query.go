package changelog

import (
	"errors"
	"fmt"
	"strings"
)

// VersionNotFoundError is returned when a changelog has no entry for the
// requested version.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	if len(e.AvailableVersions) == 0 {
		return fmt.Sprintf("version %q not found (changelog has no versions)", e.Version)
	}
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// IsVersionNotFound reports whether err is or wraps a VersionNotFoundError.
func IsVersionNotFound(err error) bool {
	var nf *VersionNotFoundError
	return errors.As(err, &nf)
}

// GetVersion returns the entry for version, accepting an optional "v" prefix.
func (c *Changelog) GetVersion(version string) (*Version, error) {
	want := NormalizeVersion(version)
	for i := range c.Versions {
		if NormalizeVersion(c.Versions[i].Version) == want {
			return &c.Versions[i], nil
		}
	}
	return nil, &VersionNotFoundError{Version: version, AvailableVersions: c.ListVersions()}
}

// ListVersions returns the version identifiers, newest first.
func (c *Changelog) ListVersions() []string {
	versions := make([]string, len(c.Versions))
	for i, v := range c.Versions {
		versions[i] = v.Version
	}
	return versions
}

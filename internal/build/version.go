// Package build holds version information injected at link time:
//
//	go build -ldflags "-X github.com/dprint/relnotes/internal/build.Version=0.9.1"
//
// It has no dependencies on other internal packages.
package build

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild reports whether this binary was built without release ldflags.
func IsDevBuild() bool {
	return Version == "dev"
}

// Info returns the one-line version string shown by --version.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate)
}

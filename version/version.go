// Package version carries build metadata injected with -ldflags, e.g.
//
//	-X github.com/philipparndt/golens/version.Version=v0.3.0
package version

import "fmt"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion adds the commit and build date when they are known
func GetFullVersion() string {
	if Version == "dev" || GitCommit == "unknown" {
		return Version
	}
	if BuildDate == "unknown" {
		return fmt.Sprintf("%s (%s)", Version, GitCommit)
	}
	return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildDate)
}

// Package version carries build metadata injected through -ldflags, e.g.
//
//	go build -ldflags "-X github.com/talento-hq/talento/internal/shared/version.Current=v1.2.0"
package version

import "fmt"

var (
	// Current is the release tag, "dev" for local builds.
	Current = "dev"
	// Commit is the short git hash of the build.
	Commit = "unknown"
	// BuildTime is an RFC 3339 timestamp of the build.
	BuildTime = "unknown"
)

// String formats the metadata for --version output.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Current, Commit, BuildTime)
}

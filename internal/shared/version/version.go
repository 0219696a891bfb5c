// Package version reports the build identity of the binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time with -ldflags "-X .../internal/shared/version.Version=v1.2.0".
var (
	Version = "dev"
	Commit  = ""
)

// String returns the version with the VCS revision when one is known.
func String() string {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	if commit == "" {
		return Version
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

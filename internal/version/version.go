// Package version reports the tincture build version. Release builds inject
// the variables below via -ldflags -X; development builds fall back to module
// build info where the toolchain records it.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time, e.g.
//
//	-ldflags "-X github.com/jmylchreest/tincture/internal/version.Version=x.y.z"
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Short returns just the semantic version, for cobra's --version plumbing.
func Short() string {
	return Version
}

// String returns the full human-readable version line, including whatever
// build metadata is available.
func String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tincture version %s", Version)

	if commit := commitHash(); commit != "" {
		fmt.Fprintf(&b, " (commit %.8s", commit)
		if Date != "" {
			fmt.Fprintf(&b, ", built %s", Date)
		}
		b.WriteString(")")
	}

	fmt.Fprintf(&b, " %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return b.String()
}

// commitHash prefers the ldflags-injected commit, then the vcs revision the
// Go toolchain stamped into the binary.
func commitHash() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return ""
}

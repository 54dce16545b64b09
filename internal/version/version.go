// Package version reports the mdbatch release and build metadata.
package version

import (
	_ "embed"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var versionFile string

// Set via -ldflags "-X github.com/leefowlercu/mdbatch/internal/version.gitCommit=VALUE".
var (
	gitCommit string
	buildDate string
)

// Info represents version and build information.
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
}

// String formats Info for human-readable display.
func (i Info) String() string {
	return fmt.Sprintf("Version:    %s\nGit Commit: %s\nBuild Date: %s\nGo Version: %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion)
}

// Get returns the populated Info for the running binary.
func Get() Info {
	return Info{
		Version:   Version(),
		GitCommit: commit(),
		BuildDate: orUnknown(buildDate),
		GoVersion: runtime.Version(),
	}
}

// Version returns the semantic version from the embedded VERSION file.
func Version() string {
	return strings.TrimSpace(versionFile)
}

// commit prefers the linker flag, then VCS build info.
func commit() string {
	if gitCommit != "" {
		return gitCommit
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision == "" {
		return "unknown"
	}
	if dirty {
		return revision + "-dirty"
	}
	return revision
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

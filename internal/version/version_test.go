package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestVersion_FromEmbeddedFile(t *testing.T) {
	got := Version()
	if got == "" {
		t.Fatal("Version() returned empty string")
	}
	if got != strings.TrimSpace(got) {
		t.Errorf("Version() = %q, contains leading/trailing whitespace", got)
	}
	if strings.Count(got, ".") < 2 {
		t.Errorf("Version() = %q, expected semver format", got)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		GitCommit: "abc1234-dirty",
		BuildDate: "2026-01-10T15:04:05Z",
		GoVersion: "go1.24.0",
	}
	want := "Version:    1.0.0\nGit Commit: abc1234-dirty\nBuild Date: 2026-01-10T15:04:05Z\nGo Version: go1.24.0"

	if got := info.String(); got != want {
		t.Errorf("Info.String() = %q, want %q", got, want)
	}
}

func TestGet_LinkerValues(t *testing.T) {
	origCommit, origDate := gitCommit, buildDate
	t.Cleanup(func() { gitCommit, buildDate = origCommit, origDate })

	gitCommit = "feedbee"
	buildDate = "2026-10-15T00:00:00Z"

	info := Get()
	if info.GitCommit != "feedbee" {
		t.Errorf("GitCommit = %q, want %q", info.GitCommit, "feedbee")
	}
	if info.BuildDate != "2026-10-15T00:00:00Z" {
		t.Errorf("BuildDate = %q, want %q", info.BuildDate, "2026-10-15T00:00:00Z")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
}

func TestGet_UnknownBuildDate(t *testing.T) {
	origDate := buildDate
	t.Cleanup(func() { buildDate = origDate })
	buildDate = ""

	if got := Get().BuildDate; got != "unknown" {
		t.Errorf("BuildDate = %q, want %q", got, "unknown")
	}
}

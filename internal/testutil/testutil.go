// Package testutil provides testing utilities for isolated test environments.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/leefowlercu/mdbatch/internal/config"
)

// TestEnv provides an isolated test environment with its own config directory.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	WorkDir   string
}

// NewTestEnv creates an isolated test environment. Config and log paths are
// redirected through environment variables, and the working directory is a
// fresh temp dir so default output paths land there.
// Cleanup is automatic via t.Cleanup.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	root := t.TempDir()
	configDir := filepath.Join(root, "config")
	workDir := filepath.Join(root, "work")
	for _, dir := range []string{configDir, workDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create test dir %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", root)
	t.Setenv(config.EnvConfigDir, configDir)
	t.Setenv("MDBATCH_LOG_FILE", filepath.Join(configDir, "mdbatch.log"))

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}

	config.Reset()
	if err := config.Init(); err != nil {
		t.Fatalf("failed to initialize test config: %v", err)
	}

	t.Cleanup(func() {
		_ = os.Chdir(origDir)
		config.Reset()
	})

	return &TestEnv{
		t:         t,
		ConfigDir: configDir,
		WorkDir:   workDir,
	}
}

// CreateTestFile creates a file under the working directory and returns its path.
func (e *TestEnv) CreateTestFile(name, content string) string {
	e.t.Helper()

	path := filepath.Join(e.WorkDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to create test file %s: %v", path, err)
	}
	return path
}

// FakeSbatch installs an executable shell script as the configured sbatch
// binary. body runs after the shebang line.
func (e *TestEnv) FakeSbatch(body string) string {
	e.t.Helper()

	if runtime.GOOS == "windows" {
		e.t.Skip("fake sbatch requires a POSIX shell")
	}

	path := filepath.Join(e.t.TempDir(), "sbatch")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		e.t.Fatalf("failed to write fake sbatch: %v", err)
	}
	config.Set("slurm.sbatch_bin", path)
	return path
}

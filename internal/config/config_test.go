package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// isolate points HOME and the config dir at a fresh temp dir and resets viper.
func isolate(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv(EnvConfigDir, tmpDir)
	t.Setenv("HOME", tmpDir)

	origDir, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
		Reset()
	})

	Reset()
	return tmpDir
}

func TestInit_NoConfigFile_UsesDefaults(t *testing.T) {
	isolate(t)

	if err := Init(); err != nil {
		t.Fatalf("Init() returned error when no config file exists: %v", err)
	}

	if path := viper.ConfigFileUsed(); path != "" {
		t.Errorf("ConfigFileUsed() = %q, want empty string when no config file", path)
	}

	if got := GetString("slurm.sbatch_bin"); got != DefaultSlurmSbatchBin {
		t.Errorf("slurm.sbatch_bin = %q, want %q", got, DefaultSlurmSbatchBin)
	}
	if got := GetString("script.output"); got != DefaultScriptOutput {
		t.Errorf("script.output = %q, want %q", got, DefaultScriptOutput)
	}
	if got := GetString("input.output"); got != DefaultInputOutput {
		t.Errorf("input.output = %q, want %q", got, DefaultInputOutput)
	}
}

func TestInit_ConfigInEnvDir_LoadsFromEnvDir(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("slurm:\n  sbatch_bin: /opt/slurm/bin/sbatch\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	if loaded := GetConfigPath(); loaded != configPath {
		t.Errorf("GetConfigPath() = %q, want %q", loaded, configPath)
	}
	if got := Get().Slurm.SbatchBin; got != "/opt/slurm/bin/sbatch" {
		t.Errorf("Get().Slurm.SbatchBin = %q, want %q", got, "/opt/slurm/bin/sbatch")
	}
}

func TestInit_InvalidYAML_ReturnsError(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("slurm: [unclosed\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if err := Init(); err == nil {
		t.Error("Init() expected error for invalid YAML")
	}
}

func TestInit_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("MDBATCH_SLURM_SUBMIT_TIMEOUT", "45")

	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	if got := GetString("slurm.submit_timeout"); got != "45" {
		t.Errorf("slurm.submit_timeout = %q, want %q", got, "45")
	}
	if got := Get().Slurm.SubmitTimeout; got != 45 {
		t.Errorf("Get().Slurm.SubmitTimeout = %d, want 45", got)
	}
}

func TestSet_OverridesDefault(t *testing.T) {
	isolate(t)
	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	Set("script.output", "other.sh")

	if got := GetString("script.output"); got != "other.sh" {
		t.Errorf("script.output = %q, want %q", got, "other.sh")
	}
}

func TestGetConfigPath_UsesEnvDirWhenNoFile(t *testing.T) {
	dir := isolate(t)
	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	want := filepath.Join(dir, "config.yaml")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestExpandPath_ExpandsTilde(t *testing.T) {
	home := os.Getenv("HOME")
	if home == "" {
		t.Skip("HOME environment variable not set")
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tilde path", "~/.config/mdbatch/app.log", filepath.Join(home, ".config/mdbatch/app.log")},
		{"tilde alone", "~", home},
		{"tilde user", "~user/file", "~user/file"},
		{"absolute path", "/var/log/mdbatch.log", "/var/log/mdbatch.log"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

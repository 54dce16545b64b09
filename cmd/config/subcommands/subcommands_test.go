package subcommands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leefowlercu/mdbatch/internal/config"
	"github.com/leefowlercu/mdbatch/internal/testutil"
)

func TestInit_WritesDefaults(t *testing.T) {
	env := testutil.NewTestEnv(t)
	initForce = false

	var out bytes.Buffer
	InitCmd.SetOut(&out)
	require.NoError(t, runInit(InitCmd, nil))

	path := filepath.Join(env.ConfigDir, "config.yaml")
	assert.Contains(t, out.String(), "Configuration written: "+path)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSlurmSbatchBin, cfg.Slurm.SbatchBin)
	assert.Equal(t, config.DefaultScriptOutput, cfg.Script.Output)
}

func TestInit_KeepsExistingWithoutForce(t *testing.T) {
	env := testutil.NewTestEnv(t)
	path := filepath.Join(env.ConfigDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0600))

	initForce = false
	var out bytes.Buffer
	InitCmd.SetOut(&out)
	require.NoError(t, runInit(InitCmd, nil))

	assert.Contains(t, out.String(), "already exists")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: debug\n", string(data))

	initForce = true
	t.Cleanup(func() { initForce = false })
	out.Reset()
	require.NoError(t, runInit(InitCmd, nil))
	assert.Contains(t, out.String(), "Configuration written")

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
}

func TestShow_Effective(t *testing.T) {
	testutil.NewTestEnv(t)
	config.Set("slurm.sbatch_bin", "/opt/slurm/bin/sbatch")

	showRaw = false
	var out bytes.Buffer
	ShowCmd.SetOut(&out)
	require.NoError(t, runShow(ShowCmd, nil))

	assert.Contains(t, out.String(), "# Effective configuration")
	assert.Contains(t, out.String(), "sbatch_bin: /opt/slurm/bin/sbatch")
}

func TestShow_RawWithoutFile(t *testing.T) {
	testutil.NewTestEnv(t)

	showRaw = true
	t.Cleanup(func() { showRaw = false })
	var out bytes.Buffer
	ShowCmd.SetOut(&out)
	require.NoError(t, runShow(ShowCmd, nil))

	assert.Contains(t, out.String(), "# No configuration file found")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		wantOut string
	}{
		{
			name:    "no file",
			wantOut: "Using default configuration values.",
		},
		{
			name:    "valid file",
			content: "log_level: warn\nslurm:\n  submit_timeout: 30\n",
			wantOut: "Configuration is valid",
		},
		{
			name:    "invalid level",
			content: "log_level: loud\n",
			wantErr: true,
			wantOut: "log_level",
		},
		{
			name:    "negative timeout",
			content: "slurm:\n  submit_timeout: -1\n",
			wantErr: true,
			wantOut: "slurm.submit_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnv(t)
			if tt.content != "" {
				path := filepath.Join(env.ConfigDir, "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))
			}

			var out bytes.Buffer
			ValidateCmd.SetOut(&out)
			err := runValidate(ValidateCmd, nil)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, strings.Contains(out.String(), tt.wantOut), "output %q missing %q", out.String(), tt.wantOut)
		})
	}
}

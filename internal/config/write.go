package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileHeader = `# mdbatch configuration
# Keys may also be set as MDBATCH_<KEY> environment variables, with dots
# written as underscores (e.g. MDBATCH_SLURM_SBATCH_BIN).
# Check edits with: mdbatch config validate

`

// Write stores cfg at path as YAML. The file is written to a temp file in the
// same directory and renamed into place, so a reader never sees a partial config.
// The directory is created 0700 and the file ends up 0600.
func Write(cfg *Config, path string) error {
	path = expandHome(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory %s; %w", dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config; %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp config file; %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	_, err = tmp.Write(append([]byte(fileHeader), data...))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write config file %s; %w", path, err)
	}

	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions; %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write config file %s; %w", path, err)
	}

	return nil
}

package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the default path for the config file.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ConfigDir returns the config directory: $MDBATCH_CONFIG_DIR if set,
// else ~/.config/mdbatch.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigExists returns true if the config file exists at the default path.
func ConfigExists() bool {
	return ConfigExistsAt(GetConfigPath())
}

// ConfigExistsAt returns true if a config file exists at the specified path.
func ConfigExistsAt(path string) bool {
	path = expandHome(path)
	_, err := os.Stat(path)
	return err == nil
}

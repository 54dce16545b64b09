package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// configFilePath stores the path to the loaded config file
var configFilePath string

// Init initializes the configuration subsystem.
// It searches for configuration files in priority order:
//  1. Directory specified by MDBATCH_CONFIG_DIR environment variable
//  2. ~/.config/mdbatch/
//  3. Current working directory (.)
//
// If no config file is found, defaults are used.
// If a config file exists but is invalid or unreadable, Init returns an error.
func Init() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if envPath := os.Getenv(EnvConfigDir); envPath != "" {
		viper.AddConfigPath(envPath)
	}

	if home := os.Getenv("HOME"); home != "" {
		viper.AddConfigPath(filepath.Join(home, ".config", AppName))
	}

	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		// Missing file is fine; defaults apply
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			configFilePath = ""
			return nil
		}

		return fmt.Errorf("failed to read config; %w", err)
	}

	configFilePath = viper.ConfigFileUsed()

	slog.Debug("config initialized", "file", configFilePath)

	return nil
}

// Reset clears the configuration state for testing purposes.
func Reset() {
	viper.Reset()
	configFilePath = ""
}

// Get returns the typed view of the global configuration.
// Values that fail to decode fall back to their defaults.
func Get() *Config {
	cfg := NewDefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Warn("failed to decode config; using defaults", "error", err)
		def := NewDefaultConfig()
		return &def
	}
	return &cfg
}

// GetString returns the string value for the given key.
// Returns empty string if key is not found.
func GetString(key string) string {
	return viper.GetString(key)
}

// Set sets a value for the given key, overriding defaults and config file values.
// Primarily used for testing.
func Set(key string, value any) {
	viper.Set(key, value)
}

// ExpandPath expands a leading ~ in path to the user's home directory.
func ExpandPath(path string) string {
	return expandHome(path)
}

// expandHome expands a leading ~ in path to the user's home directory.
// Only expands "~" alone or "~/..." patterns. Patterns like "~user" are not expanded.
// Returns the path unchanged if it doesn't start with ~/ or if home dir cannot be determined.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) > 1 && path[1] != '/' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}

	return filepath.Join(home, path[2:])
}

// GetConfigPath returns the path where the config file should be located.
// If a config file is loaded, returns its path. Otherwise returns the default path.
func GetConfigPath() string {
	if configFilePath != "" {
		return configFilePath
	}
	return DefaultConfigPath()
}

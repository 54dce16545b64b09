// Package cmdutil holds helpers shared by the CLI commands.
package cmdutil

import (
	"github.com/leefowlercu/mdbatch/internal/config"
)

// OutputPath picks the path a command writes to: the flag value if set,
// else the configured value for key, else fallback. A leading "~" is expanded.
func OutputPath(flagValue, key, fallback string) string {
	path := flagValue
	if path == "" {
		path = config.GetString(key)
	}
	if path == "" {
		path = fallback
	}
	return config.ExpandPath(path)
}

package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultLevel applies until the config is loaded, and whenever log_level is unusable.
const DefaultLevel = slog.LevelInfo

// ParseLevel reads the log_level config value. Names are matched
// case-insensitively and may carry a slog offset such as "debug-2".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return DefaultLevel, fmt.Errorf("unknown log level %q; %w", s, err)
	}
	return level, nil
}

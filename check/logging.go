// SPDX-License-Identifier: EPL-2.0

package check

import (
	"fmt"
	"log/slog"
)

// ResolveLogLevel maps a level name to a slog.Level.
func ResolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

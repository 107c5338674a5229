package config

import (
	"fmt"
	"log/slog"
	"os"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogLevel reads MINES_LOG_LEVEL. Without it, development runs log at
// debug level and everything else at info.
func LogLevel() (slog.Level, error) {
	levelStr, ok := os.LookupEnv("MINES_LOG_LEVEL")
	if !ok {
		if Development() {
			return slog.LevelDebug, nil
		}
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return 0, fmt.Errorf("unable to parse MINES_LOG_LEVEL: %w", err)
	}
	return level, nil
}

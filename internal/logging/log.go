package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New создаёт логгер для CLI. w — обычно stderr: stdout занят манифестом.
// Уровень: debug при verbose, иначе из LOG_LEVEL (debug, info, warn, error), по умолчанию info.
func New(w io.Writer, component string, verbose bool) *slog.Logger {
	level := levelFromEnv(os.Getenv("LOG_LEVEL"))
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("component", component)
}

func levelFromEnv(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

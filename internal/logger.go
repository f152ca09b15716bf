package internal

import (
	"io"
	"log/slog"
	"time"
)

// NewLogger builds the process logger: JSON output with RFC 3339 nano
// timestamps in prod so log shippers can parse it, plain text everywhere
// else. An unknown level falls back to info with a warning rather than
// failing startup.
func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	lvl := parseLevel(level)

	if env == "prod" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("time", a.Value.Time().Format(time.RFC3339Nano))
				}
				return a
			},
		}))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Default().Warn("Invalid log level. Using default level: info", slog.String("value", level))
		return slog.LevelInfo
	}
}

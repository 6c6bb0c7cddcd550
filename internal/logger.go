package internal

import (
	"io"
	"log/slog"
	"time"
)

// NewLogger builds the application logger: JSON with RFC3339Nano
// timestamps in prod, human-readable text everywhere else.
func NewLogger(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	if env != "prod" {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey && len(groups) == 0 {
			a.Value = slog.StringValue(a.Value.Time().Format(time.RFC3339Nano))
		}
		return a
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		slog.Warn("unknown log level, falling back to info", "value", level)
		return slog.LevelInfo
	}
}

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LevelTrace is the severity below slog.LevelDebug. The config loader logs every loaded
// field at this level.
const LevelTrace = slog.LevelDebug - 4

// NewLogger creates a new slog.Logger with JSON handler writing to w. A *slog.LevelVar
// level can be changed after the logger is built.
func NewLogger(level slog.Leveler, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: renameTrace,
	})

	return slog.New(handler)
}

// ParseLevel maps a level name to its slog level. Unknown names yield INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func renameTrace(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 || attr.Key != slog.LevelKey {
		return attr
	}

	if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelTrace {
		attr.Value = slog.StringValue("TRACE")
	}

	return attr
}

// OpenFile opens path for appending, creating it and its directory as needed.
func OpenFile(path string) (*os.File, error) {
	cleanPath := filepath.Clean(path)

	err := os.MkdirAll(filepath.Dir(cleanPath), 0o750)
	if err != nil {
		return nil, fmt.Errorf("creating log directory for %q: %w", cleanPath, err)
	}

	file, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640) // #nosec G304 -- path comes from the service configuration
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", cleanPath, err)
	}

	return file, nil
}

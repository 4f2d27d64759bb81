package observability

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type ctxKey string

const (
	ctxKeySessionID ctxKey = "session_id"
)

var (
	mu sync.RWMutex
	// the TUI owns stdout, so nothing is logged until Init picks a sink.
	logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Init replaces the global logger with a JSON handler writing to w.
func Init(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	l := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	mu.Lock()
	logger = l
	mu.Unlock()
	return l
}

func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return Logger().With(kv...)
}

// WithSessionID stores a session_id in the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKeySessionID, sessionID)
}

// LoggerFromContext adds session_id if present.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	id, _ := ctx.Value(ctxKeySessionID).(string)
	if id == "" {
		return Logger()
	}
	return Logger().With("session_id", id)
}

// ParseLevel maps debug/info/warn/error onto slog levels. Empty means info.
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", value)
	}
}

// OpenLogFile opens path for appending, creating parent directories.
// An empty path yields a writer that discards everything.
func OpenLogFile(path string) (io.WriteCloser, error) {
	if strings.TrimSpace(path) == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// DefaultLogPath is noteza.log under the user cache dir, or the working dir.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return "noteza.log"
	}
	return filepath.Join(dir, "noteza", "noteza.log")
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// logSink describes where the runtime log goes. Stderr is the writer used for
// the "stderr" output so commands can be driven from tests.
type logSink struct {
	Level  string
	Output string
	Path   string
	Stderr io.Writer
	Stdout io.Writer
}

func newLogger(sink logSink) (*slog.Logger, io.Closer, error) {
	lvl, err := parseLogLevel(sink.Level)
	if err != nil {
		return nil, nil, err
	}
	w, closer, err := openLogSink(sink)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})
	return slog.New(h), closer, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid --log-level %q (use: debug|info|warn|error)", level)
	}
}

func openLogSink(sink logSink) (io.Writer, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(sink.Output)) {
	case "", "stderr":
		if sink.Stderr != nil {
			return sink.Stderr, nil, nil
		}
		return os.Stderr, nil, nil
	case "stdout":
		if sink.Stdout != nil {
			return sink.Stdout, nil, nil
		}
		return os.Stdout, nil, nil
	case "file":
		p := strings.TrimSpace(sink.Path)
		if p == "" {
			return nil, nil, errors.New("log output file requires --log-file")
		}
		f, err := os.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %q: %w", p, err)
		}
		return f, f, nil
	default:
		return nil, nil, fmt.Errorf("invalid --log-output %q (use: stdout|stderr|file)", sink.Output)
	}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New builds the process logger. Lines always go to stdout; when file is
// non-empty they are duplicated into the log file. The returned func closes
// the file sink.
func New(level, file string) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stdout
	closeFn := func() {}
	noColor := false
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(os.Stdout, f)
		closeFn = func() { _ = f.Close() }
		noColor = true // ANSI escapes would end up in the file
	}

	h := tint.NewHandler(w, &tint.Options{
		Level:      parseLevel(level),
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	})
	return slog.New(h), closeFn, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

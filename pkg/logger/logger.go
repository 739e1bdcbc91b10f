package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New constructs the service JSON logger. LOG_LEVEL picks the level and LOG_FILE, when
// set, tees output into a rotated file.
func New() *slog.Logger {
	return NewWithWriter(output(os.Getenv("LOG_FILE")), os.Getenv("LOG_LEVEL"))
}

// NewWithWriter builds the logger on an arbitrary sink.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler).With("service", "sunside")
}

func output(file string) io.Writer {
	file = strings.TrimSpace(file)
	if file == "" {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename: file,
		MaxSize:  64, // MB
		MaxAge:   14,
		Compress: true,
	})
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
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

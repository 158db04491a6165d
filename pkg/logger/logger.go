package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

type Options struct {
	Level  string // debug, info, warn or error
	Format string // json or text
	File   string // empty or "-" for stdout
}

// Init replaces Log according to options. Unknown values fall back to
// info level and JSON output.
func Init(options Options) {
	Log = New(options)
	slog.SetDefault(Log)
}

func New(options Options) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(options.Level)}

	var output io.Writer
	switch options.File {
	case "", "-":
		output = os.Stdout
	default:
		output = &lumberjack.Logger{
			Filename:   options.File,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	if strings.EqualFold(options.Format, "text") {
		return slog.New(slog.NewTextHandler(output, opts))
	}
	return slog.New(slog.NewJSONHandler(output, opts))
}

func parseLevel(level string) slog.Level {
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

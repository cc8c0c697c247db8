package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sabur-pro/rayan-admin/config"
)

var (
	mu  sync.RWMutex
	log = newLogger(os.Stdout, zerolog.InfoLevel, true)
)

// Init configures the package-level logger from the application config.
// Safe to call more than once; the last call wins.
func Init(cfg *config.Config) {
	level := parseLevel(cfg.Logger.Level)

	mu.Lock()
	defer mu.Unlock()
	log = newLogger(os.Stdout, level, cfg.Logger.Pretty)
}

// SetOutput redirects log output, used by tests to capture events.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = newLogger(w, zerolog.DebugLevel, false)
}

func newLogger(w io.Writer, level zerolog.Level, pretty bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug() *zerolog.Event {
	l := current()
	return l.Debug()
}

func Info() *zerolog.Event {
	l := current()
	return l.Info()
}

func Warn() *zerolog.Event {
	l := current()
	return l.Warn()
}

func Error() *zerolog.Event {
	l := current()
	return l.Error()
}

func Fatal() *zerolog.Event {
	l := current()
	return l.Fatal()
}

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	Environment    string // development, production
	Level          string // debug, info, warn, error
	Format         string // json, pretty
	FileEnabled    bool
	FilePath       string // logs directory path
	RotationSize   int    // MB
	RetentionDays  int
	ServiceName    string
	ServiceVersion string
}

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init initializes the package logger. Development environments default to
// debug level and the console writer.
func Init(cfg Config) error {
	if cfg.Level == "" {
		cfg.Level = "info"
		if cfg.Environment == "development" {
			cfg.Level = "debug"
		}
	}
	if cfg.Format == "" {
		cfg.Format = "json"
		if cfg.Environment == "development" {
			cfg.Format = "pretty"
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var writers []io.Writer
	if cfg.Format == "pretty" {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	} else {
		writers = append(writers, os.Stderr)
	}

	if cfg.FileEnabled {
		if err := os.MkdirAll(cfg.FilePath, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		if cfg.RotationSize <= 0 {
			cfg.RotationSize = 50
		}
		if cfg.RetentionDays <= 0 {
			cfg.RetentionDays = 14
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.FilePath, "app.log"),
			MaxSize:    cfg.RotationSize,
			MaxAge:     cfg.RetentionDays,
			MaxBackups: 10,
			Compress:   true,
		})
	}

	log = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Logger()

	return nil
}

// SetOutput redirects the package logger, mostly for tests.
func SetOutput(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

func Debug(msg string, args ...any) { write(log.Debug(), msg, args) }
func Info(msg string, args ...any)  { write(log.Info(), msg, args) }
func Warn(msg string, args ...any)  { write(log.Warn(), msg, args) }
func Error(msg string, args ...any) { write(log.Error(), msg, args) }

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) { write(log.Fatal(), msg, args) }

// write attaches args as alternating key/value pairs. A bare error or a
// trailing value without a key is still logged rather than dropped.
func write(ev *zerolog.Event, msg string, args []any) {
	if ev == nil {
		return
	}
	for i := 0; i < len(args); i++ {
		if err, ok := args[i].(error); ok {
			ev = ev.Err(err)
			continue
		}
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			ev = ev.Interface(fmt.Sprintf("arg%d", i), args[i])
			continue
		}
		ev = ev.Interface(key, args[i+1])
		i++
	}
	ev.Msg(msg)
}

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// Logger interface defines the logging methods
type Logger interface {
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Fatal(msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

// Notifier receives error and fatal log lines, e.g. a Discord webhook.
type Notifier interface {
	SendLogMessage(level, message string, fields map[string]interface{}) error
}

// logger implementation
type loggerImpl struct {
	zl       zerolog.Logger
	notifier Notifier
	context  []interface{}
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level           zerolog.Level
	Console         bool
	File            bool
	FilePath        string
	MaxSizeMB       int
	MaxBackups      int
	MaxAgeDays      int
	Compress        bool
	TimeFieldFormat string
	Notifier        Notifier
}

// New creates a new logger instance with the given writers. Nil writers are
// skipped; with no writers left the logger discards everything.
func New(writers ...io.Writer) Logger {
	return &loggerImpl{zl: newZerolog(writers).Level(zerolog.DebugLevel)}
}

// Nop returns a logger that writes nowhere.
func Nop() Logger {
	return &loggerImpl{zl: zerolog.Nop()}
}

// NewFromConfig builds the logger used by the CLI.
func NewFromConfig(cfg LoggerConfig) Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFieldFormat})
	}

	if cfg.File && cfg.FilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
	}

	if cfg.TimeFieldFormat != "" {
		zerolog.TimeFieldFormat = cfg.TimeFieldFormat
	}

	return &loggerImpl{
		zl:       newZerolog(writers).Level(cfg.Level),
		notifier: cfg.Notifier,
	}
}

// DefaultLoggerConfig logs to a rotating file only, so log lines never mix
// with the interactive prompts on stdout.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:           zerolog.WarnLevel,
		Console:         false,
		File:            true,
		FilePath:        "bikeshare.log",
		MaxSizeMB:       10,
		MaxBackups:      5,
		MaxAgeDays:      30,
		Compress:        true,
		TimeFieldFormat: time.RFC3339,
	}
}

// ConsoleWriter returns a console writer on stderr
func ConsoleWriter() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
}

// FileWriter returns a file writer with rotation
func FileWriter(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
}

// ParseLogLevel maps a level name to a zerolog level, defaulting to info.
func ParseLogLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func newZerolog(writers []io.Writer) zerolog.Logger {
	var nonNil []io.Writer
	for _, w := range writers {
		if w != nil {
			nonNil = append(nonNil, w)
		}
	}
	if len(nonNil) == 0 {
		return zerolog.New(io.Discard)
	}
	return zerolog.New(io.MultiWriter(nonNil...)).With().Timestamp().Logger()
}

// With returns a child logger that adds the given key/value pairs to every line.
func (l *loggerImpl) With(fields ...interface{}) Logger {
	ctx := make([]interface{}, 0, len(l.context)+len(fields))
	ctx = append(ctx, l.context...)
	ctx = append(ctx, fields...)
	return &loggerImpl{zl: l.zl, notifier: l.notifier, context: ctx}
}

// Info logs an info message
func (l *loggerImpl) Info(msg string, fields ...interface{}) {
	l.log(l.zl.Info(), zerolog.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *loggerImpl) Warn(msg string, fields ...interface{}) {
	l.log(l.zl.Warn(), zerolog.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *loggerImpl) Error(msg string, fields ...interface{}) {
	l.log(l.zl.Error(), zerolog.ErrorLevel, msg, fields)
}

// Debug logs a debug message
func (l *loggerImpl) Debug(msg string, fields ...interface{}) {
	l.log(l.zl.Debug(), zerolog.DebugLevel, msg, fields)
}

// Fatal logs a fatal message and exits
func (l *loggerImpl) Fatal(msg string, fields ...interface{}) {
	l.log(l.zl.Fatal(), zerolog.FatalLevel, msg, fields)
}

func (l *loggerImpl) log(event *zerolog.Event, level zerolog.Level, msg string, fields []interface{}) {
	all := fields
	if len(l.context) > 0 {
		all = append(append([]interface{}{}, l.context...), fields...)
	}

	// notify first: Fatal exits inside Msg
	if l.notifier != nil && level >= zerolog.ErrorLevel && level <= zerolog.FatalLevel {
		_ = l.notifier.SendLogMessage(strings.ToUpper(level.String()), msg, fieldMap(all))
	}

	logWithFields(event, msg, all...)
}

// logWithFields adds structured fields to the event
func logWithFields(event *zerolog.Event, msg string, fields ...interface{}) {
	if event == nil {
		return
	}
	if len(fields) == 1 {
		if m, ok := fields[0].(map[string]interface{}); ok {
			event.Fields(m).Msg(msg)
			return
		}
	}
	// fallback: treat as key-value pairs
	if len(fields)%2 == 0 {
		for i := 0; i < len(fields); i += 2 {
			key, ok := fields[i].(string)
			if !ok {
				continue
			}
			// Special handling for error types
			if key == "error" {
				if err, ok := fields[i+1].(error); ok && err != nil {
					event = event.Err(err)
				} else {
					event = event.Interface(key, fields[i+1])
				}
			} else {
				event = event.Interface(key, fields[i+1])
			}
		}
	}
	event.Msg(msg)
}

func fieldMap(fields []interface{}) map[string]interface{} {
	if len(fields) == 1 {
		if m, ok := fields[0].(map[string]interface{}); ok {
			return m
		}
	}
	m := make(map[string]interface{}, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		if err, ok := fields[i+1].(error); ok && err != nil {
			m[key] = err.Error()
			continue
		}
		m[key] = fmt.Sprintf("%v", fields[i+1])
	}
	return m
}

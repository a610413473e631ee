// Package logger provides leveled logging for the slide builder, backed by zerolog.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level. Unknown values give LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger writes human-readable log lines.
type Logger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	zl     zerolog.Logger
}

// New creates a new logger with the specified level and output.
func New(level Level, output io.Writer) *Logger {
	l := &Logger{level: level, output: output}
	l.rebuild()
	return l
}

// rebuild must be called with mu held or before the logger is shared.
func (l *Logger) rebuild() {
	w := zerolog.ConsoleWriter{Out: l.output, TimeFormat: "15:04:05", NoColor: true}
	l.zl = zerolog.New(w).Level(l.level.zerolog()).With().Timestamp().Logger()
}

func (l *Logger) logger() zerolog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.zl
}

// SetLevel changes the minimum level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.rebuild()
}

// SetOutput changes the destination writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuild()
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	zl := l.logger()
	zl.Debug().Msgf(format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	zl := l.logger()
	zl.Info().Msgf(format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	zl := l.logger()
	zl.Warn().Msgf(format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	zl := l.logger()
	zl.Error().Msgf(format, args...)
}

// InfoWithFields logs a message with structured fields.
func (l *Logger) InfoWithFields(msg string, fields map[string]interface{}) {
	zl := l.logger()
	zl.Info().Fields(fields).Msg(msg)
}

// WarnWithFields logs a warning with structured fields.
func (l *Logger) WarnWithFields(msg string, fields map[string]interface{}) {
	zl := l.logger()
	zl.Warn().Fields(fields).Msg(msg)
}

// ErrorWithFields logs an error with structured fields.
func (l *Logger) ErrorWithFields(err error, msg string, fields map[string]interface{}) {
	zl := l.logger()
	zl.Error().Err(err).Fields(fields).Msg(msg)
}

var defaultLogger = New(LevelInfo, os.Stderr)

// Default returns the package-level logger.
func Default() *Logger {
	return defaultLogger
}

// SetLevel sets the minimum log level for the default logger.
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetOutput sets the output writer for the default logger.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// Debug logs a debug message using the default logger.
func Debug(format string, args ...interface{}) {
	defaultLogger.Debug(format, args...)
}

// Info logs an informational message using the default logger.
func Info(format string, args ...interface{}) {
	defaultLogger.Info(format, args...)
}

// Warn logs a warning message using the default logger.
func Warn(format string, args ...interface{}) {
	defaultLogger.Warn(format, args...)
}

// Error logs an error message using the default logger.
func Error(format string, args ...interface{}) {
	defaultLogger.Error(format, args...)
}

// InfoWithFields logs a structured message using the default logger.
func InfoWithFields(msg string, fields map[string]interface{}) {
	defaultLogger.InfoWithFields(msg, fields)
}

// WarnWithFields logs a structured warning using the default logger.
func WarnWithFields(msg string, fields map[string]interface{}) {
	defaultLogger.WarnWithFields(msg, fields)
}

// ErrorWithFields logs a structured error using the default logger.
func ErrorWithFields(err error, msg string, fields map[string]interface{}) {
	defaultLogger.ErrorWithFields(err, msg, fields)
}

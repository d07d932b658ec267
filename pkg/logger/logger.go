// Package logger provides a small levelled logging interface used by every
// component of the catalog service.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger defines the logging interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
}

// Level represents logging levels
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

type logger struct {
	level   Level
	loggers map[Level]*log.Logger
	mu      sync.RWMutex
}

// New creates a logger whose level comes from LOG_LEVEL.
func New() Logger {
	return NewWithLevel(os.Getenv("LOG_LEVEL"))
}

// NewWithLevel creates a logger writing info and below to stdout and errors to stderr.
func NewWithLevel(levelStr string) Logger {
	return NewWithWriters(levelStr, os.Stdout, os.Stderr)
}

// NewWithWriters creates a logger on explicit writers.
func NewWithWriters(levelStr string, out, errOut io.Writer) Logger {
	return &logger{
		level: ParseLevel(levelStr),
		loggers: map[Level]*log.Logger{
			LevelDebug: log.New(out, "[DEBUG] ", log.LstdFlags|log.Lshortfile),
			LevelInfo:  log.New(out, "[INFO] ", log.LstdFlags),
			LevelWarn:  log.New(out, "[WARN] ", log.LstdFlags),
			LevelError: log.New(errOut, "[ERROR] ", log.LstdFlags|log.Lshortfile),
		},
	}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() Logger {
	return NewWithWriters("error", io.Discard, io.Discard)
}

// ParseLevel converts string log level to Level type
func ParseLevel(levelStr string) Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
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

// ValidLevel reports whether levelStr names a known level.
func ValidLevel(levelStr string) bool {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func (l *logger) shouldLog(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

func (l *logger) output(level Level, msg string) {
	l.mu.RLock()
	out := l.loggers[level]
	l.mu.RUnlock()

	out.Output(4, msg)
}

func (l *logger) print(level Level, v ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	l.output(level, fmt.Sprint(v...))
}

func (l *logger) printf(level Level, format string, v ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	l.output(level, fmt.Sprintf(format, v...))
}

func (l *logger) Debug(v ...interface{}) {
	l.print(LevelDebug, v...)
}

func (l *logger) Debugf(format string, v ...interface{}) {
	l.printf(LevelDebug, format, v...)
}

func (l *logger) Info(v ...interface{}) {
	l.print(LevelInfo, v...)
}

func (l *logger) Infof(format string, v ...interface{}) {
	l.printf(LevelInfo, format, v...)
}

func (l *logger) Warn(v ...interface{}) {
	l.print(LevelWarn, v...)
}

func (l *logger) Warnf(format string, v ...interface{}) {
	l.printf(LevelWarn, format, v...)
}

func (l *logger) Error(v ...interface{}) {
	l.print(LevelError, v...)
}

func (l *logger) Errorf(format string, v ...interface{}) {
	l.printf(LevelError, format, v...)
}

// Fatal logs an error message and exits
func (l *logger) Fatal(v ...interface{}) {
	l.print(LevelError, v...)
	os.Exit(1)
}

// Fatalf logs a formatted error message and exits
func (l *logger) Fatalf(format string, v ...interface{}) {
	l.printf(LevelError, format, v...)
	os.Exit(1)
}

// Package logx provides tagged printf-style logging for the agent core.
package logx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes timestamped, tagged log lines to stderr.
type Logger struct {
	tag    string
	logger *log.Logger
}

// Level identifies the severity of a log line.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var (
	debugMu      sync.RWMutex
	debugEnabled bool
)

// init reads the DEBUG environment variable so debug logging can be
// enabled without code changes.
func init() { //nolint:gochecknoinits // Required for env var initialization
	if debug := os.Getenv("DEBUG"); debug == "1" || strings.EqualFold(debug, "true") {
		debugEnabled = true
	}
}

// NewLogger creates a logger tagged with the given identifier, typically
// a machine or registry ID.
func NewLogger(tag string) *Logger {
	return &Logger{
		tag:    tag,
		logger: log.New(os.Stderr, "", 0), // Log to stderr for CLI compatibility
	}
}

// WithTag returns a copy of the logger with a different tag.
func (l *Logger) WithTag(tag string) *Logger {
	return &Logger{tag: tag, logger: l.logger}
}

// Tag returns the logger's tag.
func (l *Logger) Tag() string {
	return l.tag
}

// SetDebug toggles debug logging globally.
func SetDebug(enabled bool) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug logging is enabled.
func IsDebugEnabled() bool {
	debugMu.RLock()
	defer debugMu.RUnlock()
	return debugEnabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	timestamp := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%s [%s] %s: %s", timestamp, level, l.tag, message)
}

// Debug logs a debug message. Suppressed unless debug logging is enabled
// via SetDebug or the DEBUG environment variable.
func (l *Logger) Debug(format string, args ...any) {
	if !IsDebugEnabled() {
		return
	}
	l.log(LevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

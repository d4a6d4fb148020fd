// Package log is a small levelled logger writing timestamped lines to stderr.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Logger struct {
	mu     sync.Mutex
	output io.Writer
	prefix string
	level  Level
}

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// New returns a Logger writing to w. A nil w discards everything.
func New(w io.Writer, prefix string, level Level) *Logger {
	return &Logger{output: w, prefix: prefix, level: level}
}

func (l *Logger) printf(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level > level || l.output == nil {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Appendf(nil, format, args...)
	if len(msg) > 0 && msg[len(msg)-1] != '\n' {
		msg = append(msg, '\n')
	}
	fmt.Fprintf(l.output, "[%s] [%s] [%s] %s", timestamp, level, l.prefix, msg)
}

func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.output = w
	l.mu.Unlock()
}

func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	l.prefix = prefix
	l.mu.Unlock()
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.output != nil && l.level <= level
}

func (l *Logger) Tracef(format string, args ...any) {
	l.printf(LevelTrace, format, args...)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.printf(LevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.printf(LevelInfo, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.printf(LevelWarn, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.printf(LevelError, format, args...)
}

var global = New(os.Stderr, "groupwm", LevelInfo)

// Default returns the package-level Logger.
func Default() *Logger {
	return global
}

// SetOutput sets the output writer for the package-level Logger.
// If w is nil, logging is disabled.
func SetOutput(w io.Writer) {
	global.SetOutput(w)
}

// SetPrefix sets the prefix written in front of each message.
func SetPrefix(prefix string) {
	global.SetPrefix(prefix)
}

// SetLevel sets the minimum level the package-level Logger writes.
func SetLevel(level Level) {
	global.SetLevel(level)
}

func Tracef(format string, args ...any) {
	global.Tracef(format, args...)
}

func Debugf(format string, args ...any) {
	global.Debugf(format, args...)
}

// Infof logs at info level using the package-level Logger.
func Infof(format string, args ...any) {
	global.Infof(format, args...)
}

// Warnf logs at warn level using the package-level Logger.
func Warnf(format string, args ...any) {
	global.Warnf(format, args...)
}

// Errorf logs at error level using the package-level Logger.
func Errorf(format string, args ...any) {
	global.Errorf(format, args...)
}

// Fatalf logs at error level and exits the process with status 1.
func Fatalf(format string, args ...any) {
	global.Errorf(format, args...)
	os.Exit(1)
}

// Package log provides the internal logging used by the default recoverable
// error handler and the csscompress CLI.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled, timestamped messages to an output stream.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	prefix string
}

var std = &Logger{
	out:   os.Stderr,
	level: WarnLevel,
}

// New creates a standalone Logger instance.
func New(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level}
}

// SetOutput sets the output destination of the default logger.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.out = w
}

// SetLevel sets the minimum level the default logger emits.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// SetPrefix sets a prefix applied to every message from the default logger.
func SetPrefix(prefix string) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.prefix = prefix
}

func (l *Logger) log(level Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	if l.prefix != "" {
		fmt.Fprintf(l.out, "[%s] %s [%s] %s\n", ts, l.prefix, level, msg)
	} else {
		fmt.Fprintf(l.out, "[%s] [%s] %s\n", ts, level, msg)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.log(DebugLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log(InfoLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log(WarnLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(ErrorLevel, fmt.Sprintf(format, args...)) }

// Debugf logs a formatted debug message on the default logger.
func Debugf(format string, args ...interface{}) { std.log(DebugLevel, fmt.Sprintf(format, args...)) }

// Infof logs a formatted info message on the default logger.
func Infof(format string, args ...interface{}) { std.log(InfoLevel, fmt.Sprintf(format, args...)) }

// Warnf logs a formatted warning message on the default logger.
func Warnf(format string, args ...interface{}) { std.log(WarnLevel, fmt.Sprintf(format, args...)) }

// Errorf logs a formatted error message on the default logger.
func Errorf(format string, args ...interface{}) { std.log(ErrorLevel, fmt.Sprintf(format, args...)) }

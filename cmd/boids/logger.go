package main

import (
	"io"
	"log"
	"strings"

	"github.com/PrincetonUniversity/boidswarm"
)

// LogLevel represents a logging level.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the name of the level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// parseLogLevel parses a level name (case-insensitive), defaulting to info.
func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger is a leveled logger writing through the standard log package.
type Logger struct {
	level LogLevel
	out   *log.Logger
}

var _ boidswarm.Logger = (*Logger)(nil)

// NewLogger returns a logger writing messages of at least the given level to w.
func NewLogger(w io.Writer, level string) *Logger {
	return &Logger{
		level: parseLogLevel(level),
		out:   log.New(w, "", log.LstdFlags),
	}
}

func (l *Logger) logf(level LogLevel, prefix, format string, v ...any) {
	if level >= l.level {
		l.out.Printf(prefix+format, v...)
	}
}

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, v ...any) { l.logf(LogLevelDebug, "[DEBUG] ", format, v...) }

// Infof logs an info message.
func (l *Logger) Infof(format string, v ...any) { l.logf(LogLevelInfo, "[INFO] ", format, v...) }

// Warnf logs a warning.
func (l *Logger) Warnf(format string, v ...any) { l.logf(LogLevelWarn, "[WARN] ", format, v...) }

// Errorf logs an error.
func (l *Logger) Errorf(format string, v ...any) { l.logf(LogLevelError, "[ERROR] ", format, v...) }

// Package log is a small leveled wrapper around the standard logger.
package log

import (
	"io"
	"log"
	"os"
	"strings"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

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
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name, falling back to info.
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

type Logger struct {
	logger *log.Logger
	level  Level
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", log.LstdFlags),
		level:  level,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger { return New(io.Discard, LevelNone) }

// Stderr returns a logger writing to standard error at level.
func Stderr(level Level) *Logger { return New(os.Stderr, level) }

func (l *Logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v...) }

func (l *Logger) Infof(format string, v ...interface{}) { l.printf(LevelInfo, format, v...) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.printf(LevelWarn, format, v...) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v...) }

func (l *Logger) printf(level Level, format string, v ...interface{}) {
	if l == nil || level < l.level {
		return
	}
	l.logger.Printf(level.String()+": "+format, v...)
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Level() Level {
	return l.level
}

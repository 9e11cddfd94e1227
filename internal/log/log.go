package log

import (
	"fmt"
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level. Unknown names are an error so a
// typo in the config file doesn't silently turn on debug output.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO", "":
		return LevelInfo, nil
	case "ERROR":
		return LevelError, nil
	case "NONE":
		return LevelNone, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

type Logger struct {
	logger *log.Logger
	level  Level
	tag    string
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", 0), // No prefix, handled by format string
		level:  level,
	}
}

// Discard returns a logger that drops everything. Handy for tests.
func Discard() *Logger { return New(io.Discard, LevelNone) }

// Tagged returns a logger sharing the same sink and level whose lines are
// prefixed with tag, e.g. a run id.
func (l *Logger) Tagged(tag string) *Logger {
	t := tag
	if l.tag != "" {
		t = l.tag + " " + tag
	}
	return &Logger{logger: l.logger, level: l.level, tag: t}
}

func (l *Logger) printf(lvl, format string, v ...interface{}) {
	if l.tag != "" {
		l.logger.Printf(lvl+": "+l.tag+" "+format, v...)
		return
	}
	l.logger.Printf(lvl+": "+format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.level <= LevelDebug {
		l.printf("DEBUG", format, v...)
	}
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if l.level <= LevelInfo {
		l.printf("INFO", format, v...)
	}
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.level <= LevelError {
		l.printf("ERROR", format, v...)
	}
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.level <= LevelInfo { // Warnings are shown at Info level or higher
		l.printf("WARN", format, v...)
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Level() Level {
	return l.level
}

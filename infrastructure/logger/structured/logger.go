// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports JSON or text output, level filtering and rotated log files

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, sends output to a rotated log file instead of stdout
	File string
}

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
}

// New creates a logger from options
func New(opts Options) *Logger {
	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(ParseLevel(opts.Level))
	if strings.EqualFold(opts.Format, "text") {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	return &Logger{entry: base}
}

// NewWithLogrus wraps an existing logrus logger
func NewWithLogrus(base *logrus.Logger) *Logger {
	return &Logger{entry: base}
}

// ParseLevel converts a level name, defaulting to info
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

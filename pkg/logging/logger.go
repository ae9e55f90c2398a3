package logging

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"stratagix/pkg/config"
)

// Logger represents a logger instance
type Logger = *logrus.Logger

// Fields represents structured logging fields
type Fields = logrus.Fields

// Entry is a logger bound to a set of fields
type Entry = *logrus.Entry

// Log levels
const (
	DebugLevel = logrus.DebugLevel
	InfoLevel  = logrus.InfoLevel
	WarnLevel  = logrus.WarnLevel
	ErrorLevel = logrus.ErrorLevel
)

// NewLogger returns a logger at LOG_LEVEL. Output is JSON unless
// LOG_FORMAT=text, which is friendlier when running a service by hand.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(formatter(config.GetEnv("LOG_FORMAT", "json")))
	logger.SetLevel(config.GetLogLevel())
	return logger
}

func formatter(format string) logrus.Formatter {
	if strings.EqualFold(format, "text") {
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339}
	}
	return &logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano}
}

// NewLoggerWithService creates a logger that stamps every entry with the service name
func NewLoggerWithService(serviceName string) *logrus.Logger {
	logger := NewLogger()
	logger.AddHook(&staticFieldsHook{fields: Fields{"service": serviceName}})
	return logger
}

// NewDiscardLogger returns a logger that drops all output. Used by tests and the CLI.
func NewDiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type staticFieldsHook struct {
	fields Fields
}

func (h *staticFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *staticFieldsHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, exists := entry.Data[k]; !exists {
			entry.Data[k] = v
		}
	}
	return nil
}

package logger

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type ctxKey string

// Context keys set by the auth middleware and read when building a logger
const (
	PrincipalKey ctxKey = "principal"
	RoleKey      ctxKey = "role"
	RequestIDKey ctxKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logger with the JSON formatter and the given level
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the principal and request id from ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger.WithField("principal", "unknown")
	}

	if principal, ok := ctx.Value(PrincipalKey).(string); ok && principal != "" {
		logger.Entry = logger.Entry.WithField("principal", principal)
	} else {
		logger.Entry = logger.Entry.WithField("principal", "unknown")
	}
	if role, ok := ctx.Value(RoleKey).(string); ok && role != "" {
		logger.Entry = logger.Entry.WithField("role", role)
	}
	if rid, ok := ctx.Value(RequestIDKey).(string); ok && rid != "" {
		logger.Entry = logger.Entry.WithField("request_id", rid)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

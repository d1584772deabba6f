package logging

import (
	"context"
	"time"
)

// LogLevel represents logging severity
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field is a structured key/value pair attached to a log message
type Field struct {
	Key   string
	Value interface{}
}

// F creates a field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is the logging interface used throughout the tool
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	WithTraceID(traceID string) Logger
	WithContext(ctx context.Context) Logger
	SetLevel(level LogLevel)
	Close() error
}

// LogEntry is the JSON shape written by the file logger
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	TraceID   string                 `json:"traceId,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

type traceIDKey struct{}

// ContextWithTraceID attaches a trace ID to a context
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext extracts a trace ID from a context, or ""
func TraceIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(traceIDKey{}).(string); ok {
		return v
	}
	return ""
}

// NoOpLogger discards all messages
type NoOpLogger struct{}

// NewNoOpLogger creates a logger that discards everything
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (l *NoOpLogger) Debug(msg string, fields ...Field) {}

func (l *NoOpLogger) Info(msg string, fields ...Field) {}

func (l *NoOpLogger) Warn(msg string, fields ...Field) {}

func (l *NoOpLogger) Error(msg string, fields ...Field) {}

func (l *NoOpLogger) WithTraceID(traceID string) Logger { return l }

func (l *NoOpLogger) WithContext(ctx context.Context) Logger { return l }

func (l *NoOpLogger) SetLevel(level LogLevel) {}

func (l *NoOpLogger) Close() error { return nil }

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func newTestConsoleLogger(level LogLevel, redact bool) (*ConsoleLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(ConsoleLoggerConfig{
		Writer:          buf,
		Level:           level,
		RedactSensitive: redact,
	})
	return logger, buf
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	logger, buf := newTestConsoleLogger(WARN, false)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below WARN were written: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("WARN/ERROR messages missing: %q", out)
	}
}

func TestConsoleLogger_SetLevel(t *testing.T) {
	logger, buf := newTestConsoleLogger(ERROR, false)

	logger.Info("before")
	logger.SetLevel(DEBUG)
	logger.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("INFO written while level was ERROR")
	}
	if !strings.Contains(out, "after") {
		t.Error("DEBUG not written after lowering the level")
	}
}

func TestConsoleLogger_Fields(t *testing.T) {
	logger, buf := newTestConsoleLogger(INFO, false)

	logger.Info("Found total files", F("count", 42), F("driveId", "drive123"))

	out := buf.String()
	if !strings.Contains(out, "count=42") {
		t.Errorf("count field missing: %q", out)
	}
	if !strings.Contains(out, "driveId=drive123") {
		t.Errorf("driveId field missing: %q", out)
	}
}

func TestConsoleLogger_WithTraceID(t *testing.T) {
	logger, buf := newTestConsoleLogger(INFO, false)

	traced := logger.WithTraceID("abcdef1234567890")
	traced.Info("traced message")

	if !strings.Contains(buf.String(), "[abcdef12]") {
		t.Errorf("short trace ID missing from output: %q", buf.String())
	}

	buf.Reset()
	logger.Info("untraced message")
	if strings.Contains(buf.String(), "abcdef12") {
		t.Error("WithTraceID mutated the parent logger")
	}
}

func TestConsoleLogger_Redaction(t *testing.T) {
	tests := []struct {
		name    string
		message string
		secret  string
	}{
		{"bearer token", "header Bearer ya29.a0AfH6SMC-token-value", "ya29.a0AfH6SMC-token-value"},
		{"access token", `body access_token: "secret-token-123"`, "secret-token-123"},
		{"auth header", "Authorization: dXNlcjpwYXNz", "dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestConsoleLogger(INFO, true)
			logger.Info(tt.message)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("secret leaked into log output: %q", out)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("no redaction marker in output: %q", out)
			}
		})
	}
}

func TestConsoleLogger_RedactsFieldValues(t *testing.T) {
	logger, buf := newTestConsoleLogger(INFO, true)

	logger.Info("request sent", F("auth", "Bearer super-secret-token"))

	if strings.Contains(buf.String(), "super-secret-token") {
		t.Errorf("field value not redacted: %q", buf.String())
	}
}

func TestShortTraceID(t *testing.T) {
	if got := shortTraceID("1234567890"); got != "12345678" {
		t.Errorf("shortTraceID() = %q, want %q", got, "12345678")
	}
	if got := shortTraceID("abc"); got != "abc" {
		t.Errorf("shortTraceID() = %q, want %q", got, "abc")
	}
}

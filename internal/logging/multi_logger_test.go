package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestMultiLogger_FansOut(t *testing.T) {
	bufA := &bytes.Buffer{}
	bufB := &bytes.Buffer{}
	multi := NewMultiLogger(
		NewConsoleLogger(ConsoleLoggerConfig{Writer: bufA, Level: INFO}),
		NewConsoleLogger(ConsoleLoggerConfig{Writer: bufB, Level: INFO}),
	)

	multi.Info("shared message", F("k", "v"))

	for name, buf := range map[string]*bytes.Buffer{"first": bufA, "second": bufB} {
		if !strings.Contains(buf.String(), "shared message") {
			t.Errorf("%s logger missed the message: %q", name, buf.String())
		}
	}
}

func TestMultiLogger_WithTraceID(t *testing.T) {
	bufA := &bytes.Buffer{}
	bufB := &bytes.Buffer{}
	multi := NewMultiLogger(
		NewConsoleLogger(ConsoleLoggerConfig{Writer: bufA, Level: INFO}),
		NewConsoleLogger(ConsoleLoggerConfig{Writer: bufB, Level: INFO}),
	)

	multi.WithTraceID("deadbeef-trace").Info("traced")

	if !strings.Contains(bufA.String(), "[deadbeef]") || !strings.Contains(bufB.String(), "[deadbeef]") {
		t.Error("trace ID not propagated to every child")
	}
	bufA.Reset()
	multi.Info("untraced")
	if strings.Contains(bufA.String(), "deadbeef") {
		t.Error("WithTraceID mutated the parent multi logger")
	}
}

func TestMultiLogger_SetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	multi := NewMultiLogger(
		NewConsoleLogger(ConsoleLoggerConfig{Writer: buf, Level: ERROR}),
	)

	multi.Debug("dropped")
	multi.SetLevel(DEBUG)
	multi.Debug("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("message below level was written")
	}
	if !strings.Contains(out, "kept") {
		t.Error("SetLevel did not reach the child logger")
	}
}

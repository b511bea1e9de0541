package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLoggerConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := SetupLogger(Config{Level: slog.LevelDebug, Output: &buf})
	defer closeFn()

	logger.Debug("table built", "rows", 3)

	out := buf.String()
	if !strings.Contains(out, "table built") {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, "rows=3") {
		t.Errorf("Expected rows attribute in output, got %q", out)
	}
}

func TestSetupLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := SetupLogger(Config{Level: slog.LevelWarn, Output: &buf})
	defer closeFn()

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}
}

func TestMultiHandlerFansOut(t *testing.T) {
	var debug, warn bytes.Buffer
	multi := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}
	logger := slog.New(multi).With("component", "frame")

	logger.Debug("transposing")
	logger.Warn("rename failed")

	if strings.Count(debug.String(), "component=frame") != 2 {
		t.Errorf("Expected both records in debug handler, got %q", debug.String())
	}
	if strings.Contains(warn.String(), "transposing") {
		t.Errorf("Expected debug record to skip warn handler, got %q", warn.String())
	}
	if !strings.Contains(warn.String(), "rename failed") {
		t.Errorf("Expected warn record in warn handler, got %q", warn.String())
	}
}

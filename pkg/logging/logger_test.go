package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_EmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf)

	logger.Info(context.Background(), "game over", "fuel", -0.001)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "game over" {
		t.Errorf("Expected msg 'game over', got %v", entry["msg"])
	}
	if entry["fuel"] != -0.001 {
		t.Errorf("Expected fuel attribute, got %v", entry["fuel"])
	}
}

func TestLogger_ErrorIncludesError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf)

	logger.Error(context.Background(), "load failed", errors.New("boom"))

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("Expected error text in output, got %q", buf.String())
	}
}

func TestLogger_DebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf)

	logger.Debug(context.Background(), "hidden")

	if buf.Len() != 0 {
		t.Errorf("Expected debug suppressed at default level, got %q", buf.String())
	}
}

func TestLogger_LevelFromEnv(t *testing.T) {
	t.Setenv("SALVAGE_LOG_LEVEL", "DEBUG")

	var buf bytes.Buffer
	logger := NewLoggerTo(&buf)
	logger.Debug(context.Background(), "visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected debug emitted at DEBUG level, got %q", buf.String())
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("io failure")

	wrapped := WrapError(base, "loading config %s", "config.json")
	if wrapped == nil {
		t.Fatal("Expected non-nil wrapped error")
	}
	if !errors.Is(wrapped, base) {
		t.Error("Expected wrapped error to preserve the original")
	}
	if !strings.Contains(wrapped.Error(), "config.json") {
		t.Errorf("Expected formatted context, got %q", wrapped.Error())
	}

	if WrapError(nil, "ignored") != nil {
		t.Error("Expected nil error to stay nil")
	}
}

package logging

import (
	"encoding/json"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		got := ParseLevel(tt.input)
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInitSetsGlobalLevel(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	for _, asJSON := range []bool{true, false} {
		logger, err := Init("warn", asJSON)
		if err != nil {
			t.Fatalf("Init(json=%v): %v", asJSON, err)
		}
		if zap.L() != logger {
			t.Errorf("Init(json=%v) did not replace the global logger", asJSON)
		}
		if logger.Core().Enabled(zapcore.InfoLevel) {
			t.Errorf("Init(json=%v): info should be disabled at warn level", asJSON)
		}
		if !logger.Core().Enabled(zapcore.ErrorLevel) {
			t.Errorf("Init(json=%v): error should be enabled at warn level", asJSON)
		}
	}
}

func TestStructuredFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	logger.Info("dataset extracted", zap.String("path", "train.csv"), zap.Int("items", 3))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "train.csv" {
		t.Errorf("expected path 'train.csv', got %v", fields["path"])
	}
	if fields["items"] != int64(3) {
		t.Errorf("expected items 3, got %v (%T)", fields["items"], fields["items"])
	}

	data, err := json.Marshal(fields)
	if err != nil || len(data) == 0 {
		t.Errorf("fields should be JSON-serializable: %v", err)
	}
}

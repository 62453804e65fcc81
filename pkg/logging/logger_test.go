package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log JSON %q: %v", buf.String(), err)
	}
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected slog.Level
	}{
		{"debug_level", "DEBUG", slog.LevelDebug},
		{"info_level", "INFO", slog.LevelInfo},
		{"warn_level", "WARN", slog.LevelWarn},
		{"warning_level", "WARNING", slog.LevelWarn},
		{"error_level", "ERROR", slog.LevelError},
		{"lowercase_debug", "debug", slog.LevelDebug},
		{"padded", " error ", slog.LevelError},
		{"invalid_level", "LOUD", slog.LevelInfo},
		{"empty_value", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.value); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestNewLoggerWithWriter_RespectsEnvLevel(t *testing.T) {
	t.Setenv(LevelEnvVar, "WARN")
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	logger.Info(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Errorf("Expected INFO to be filtered at WARN, got %q", buf.String())
	}

	logger.Warn(context.Background(), "kept")
	if entry := decodeEntry(t, &buf); entry["msg"] != "kept" {
		t.Errorf("Expected msg 'kept', got %v", entry["msg"])
	}
}

func TestCorrelationID(t *testing.T) {
	t.Run("generate_unique", func(t *testing.T) {
		id1 := GenerateCorrelationID()
		id2 := GenerateCorrelationID()

		if id1 == id2 {
			t.Error("GenerateCorrelationID() returned duplicate IDs")
		}
		if len(id1) != 32 || strings.Contains(id1, "-") {
			t.Errorf("Expected 32 hex characters, got %q", id1)
		}
	})

	t.Run("round_trip_through_context", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "match-7")
		if got := GetCorrelationID(ctx); got != "match-7" {
			t.Errorf("GetCorrelationID() = %q, want %q", got, "match-7")
		}
	})

	t.Run("absent", func(t *testing.T) {
		if got := GetCorrelationID(context.Background()); got != "" {
			t.Errorf("GetCorrelationID() = %q, want empty string", got)
		}
	})

	t.Run("auto_generate", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "")
		if got := GetCorrelationID(ctx); len(got) != 32 {
			t.Errorf("Expected generated ID of length 32, got %q", got)
		}
	})
}

func TestSanitizeAttributes(t *testing.T) {
	tests := []struct {
		name     string
		attr     slog.Attr
		expected string
	}{
		{"password_field", slog.String("password", "secret123"), "[REDACTED]"},
		{"token_field", slog.String("auth_token", "bearer"), "[REDACTED]"},
		{"case_insensitive", slog.String("API_KEY", "abc"), "[REDACTED]"},
		{"key_binding_kept", slog.String("fire_key", "W"), "W"},
		{"normal_field", slog.String("player", "p1"), "p1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeAttributes(nil, tt.attr)
			if result.Value.String() != tt.expected {
				t.Errorf("sanitizeAttributes() = %q, want %q", result.Value.String(), tt.expected)
			}
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelDebug)
	ctx := WithCorrelationID(context.Background(), "test-id-123")

	t.Run("info_logging", func(t *testing.T) {
		buf.Reset()
		logger.Info(ctx, "rocket spawned", "player", "p1")

		entry := decodeEntry(t, &buf)
		if entry["level"] != "INFO" || entry["msg"] != "rocket spawned" {
			t.Errorf("Unexpected entry %v", entry)
		}
		if entry["correlation_id"] != "test-id-123" {
			t.Errorf("Expected correlation_id 'test-id-123', got %v", entry["correlation_id"])
		}
		if entry["player"] != "p1" {
			t.Errorf("Expected player 'p1', got %v", entry["player"])
		}
	})

	t.Run("error_logging", func(t *testing.T) {
		buf.Reset()
		logger.Error(ctx, "step failed", errors.New("non-finite state"))

		entry := decodeEntry(t, &buf)
		if entry["level"] != "ERROR" || entry["error"] != "non-finite state" {
			t.Errorf("Unexpected entry %v", entry)
		}
	})

	t.Run("with_fields", func(t *testing.T) {
		buf.Reset()
		logger.With("match_id", "m1").Debug(context.Background(), "tick")

		entry := decodeEntry(t, &buf)
		if entry["match_id"] != "m1" || entry["level"] != "DEBUG" {
			t.Errorf("Unexpected entry %v", entry)
		}
		if _, ok := entry["correlation_id"]; ok {
			t.Error("Log should not contain correlation_id when none is set in context")
		}
	})
}

func TestNewNopLogger_Discards(t *testing.T) {
	logger := NewNopLogger()
	logger.Error(context.Background(), "ignored", errors.New("boom"))
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	original := errors.New("original error")
	wrapped := WrapError(original, "loading %s", "match.yaml")

	if wrapped.Error() != "loading match.yaml: original error" {
		t.Errorf("WrapError() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, original) {
		t.Error("WrapError() should preserve original error")
	}
}

package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("скрыто")
	log.Warn("topic missing", "topic", "payment-successful")

	out := buf.String()
	assert.NotContains(t, out, "скрыто")
	assert.Contains(t, out, "topic missing")
	assert.Contains(t, out, "topic=payment-successful")
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	log := New(Config{Level: "info", File: file})

	log.Info("producer connected")

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "producer connected")
}

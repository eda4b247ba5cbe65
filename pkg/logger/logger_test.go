package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_WritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Output: &buf})

	log.Info().Str("component", "test").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "time")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "error", Output: &buf})

	log.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	log.Error().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

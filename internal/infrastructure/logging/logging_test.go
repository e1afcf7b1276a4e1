package logging

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
		name     string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.name))
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Out: &buf})

	log.Debug().Msg("hidden")
	log.Info().Str("scene", "Playing").Msg("scene changed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scene changed", entry["message"])
	assert.Equal(t, "Playing", entry["scene"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNew_PrettyAndFile(t *testing.T) {
	var out, file bytes.Buffer
	log := New(Options{Level: "debug", Pretty: true, Out: &out, File: &file})

	log.Debug().Msg("both sinks")

	assert.Contains(t, out.String(), "both sinks")
	assert.Contains(t, file.String(), "both sinks")
	assert.NotContains(t, file.String(), "\x1b[", "file sink has no colour codes")
}

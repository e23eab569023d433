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
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("json", &buf)

	log.Info().Str("key", "upload/clip.mp4").Msg("upload succeeded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "upload succeeded", entry["message"])
	assert.Equal(t, "upload/clip.mp4", entry["key"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New("console", &buf)

	log.Info().Msg("configuration loaded")

	assert.Contains(t, buf.String(), "configuration loaded")
	assert.False(t, json.Valid(buf.Bytes()))
}

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zerolog.TraceLevel, ParseLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}

func TestNew_WritesConsoleAndFile(t *testing.T) {
	var console, file bytes.Buffer
	log := New("info", &console, &file)

	log.Debug().Msg("hidden")
	log.Info().Str("vehicle", "jeep").Msg("run started")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "run started")
	assert.Contains(t, file.String(), "run started")
	assert.Contains(t, file.String(), "vehicle=jeep")
	assert.NotContains(t, file.String(), "\x1b[")
}

func TestNew_ConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	log := New("error", &console, nil)

	log.Warn().Msg("quiet")
	log.Error().Msg("loud")
	assert.NotContains(t, console.String(), "quiet")
	assert.Contains(t, console.String(), "loud")
}

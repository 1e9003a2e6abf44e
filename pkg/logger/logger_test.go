package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Output: &buf})

	l.Info().Str("recurso", "marcas").Msg("creado")
	l.Debug().Msg("no debe salir")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "marcas", entry["recurso"])
	assert.Equal(t, "creado", entry["message"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

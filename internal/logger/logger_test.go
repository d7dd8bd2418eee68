package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"offerhub/internal/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	logger.SetupWriter(&buf, "warn")

	log.Info().Msg("dropped")
	log.Warn().Str("offer_id", "42").Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "offerhub", entry["service"])
	assert.Equal(t, "42", entry["offer_id"])
}

func TestSetupWriter_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logger.SetupWriter(&buf, "chatty")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(&out, "warn")
	require.NoError(t, err)

	logger.Info().Msg("Scanning started")
	logger.Warn().Str("barcode", "111").Msg("Catalog lookup failed")

	assert.NotContains(t, out.String(), "Scanning started")
	assert.Contains(t, out.String(), "Catalog lookup failed")
	assert.Contains(t, out.String(), "barcode=111")
}

func TestNewDefaultsEmptyLevelToInfo(t *testing.T) {
	logger, err := New(&bytes.Buffer{}, "")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "chatty")
	require.ErrorContains(t, err, "parse log level")
}

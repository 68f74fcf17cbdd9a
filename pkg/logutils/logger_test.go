package logutils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "closet.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", file)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		logger.Debug().Msg("hidden")
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"message":"first"`)
	assert.Contains(t, out, `"message":"second"`, "file is appended")
	assert.NotContains(t, out, "hidden")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(zerolog.WarnLevel, &buf)

	logger.Info().Msg("skip")
	logger.Warn().Str("component", "store").Msg("slow")

	assert.NotContains(t, buf.String(), "skip")
	assert.Contains(t, buf.String(), `"component":"store"`)
	assert.Contains(t, buf.String(), `"time"`)
}

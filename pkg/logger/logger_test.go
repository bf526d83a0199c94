package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// Init is once-only for the whole process, so a single test owns the
// singleton and checks both the returned logger and the Get accessor.
func TestSingletonLogger(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})

	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())

	log.Debug().Str("component", "catalog").Msg("warming cache")
	assert.Contains(t, buf.String(), "warming cache")
	assert.Contains(t, buf.String(), `"component":"catalog"`)

	// Level methods must chain directly off Get.
	Get().Info().Str("method", "GET").Msg("request")
	Get().Error().Err(assert.AnError).Msg("lookup failed")

	out := buf.String()
	assert.Contains(t, out, "request")
	assert.Contains(t, out, "lookup failed")
	assert.Contains(t, out, `"level":"error"`)

	// A second Init must not reconfigure the singleton.
	var other bytes.Buffer
	Init(Options{Level: "error", Output: &other})
	Get().Info().Msg("still routed to the first writer")
	assert.Empty(t, other.String())
	assert.Contains(t, buf.String(), "still routed to the first writer")
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel(" ERROR "))
}

package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurbonovm/mktekhub-sub000/pkg/logger"
)

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "stock-engine", Out: &buf})

	comp := l.Component("transfer")
	comp.Info().Str("sku", "SKU-A").Msg("traslado")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "stock-engine", event["service"])
	assert.Equal(t, "transfer", event["component"])
	assert.Equal(t, "SKU-A", event["sku"])
	assert.Equal(t, "info", event["level"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "WARN", Out: &buf})

	l.Info().Msg("descartado")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "nope", Out: &buf})

	l.Debug().Msg("descartado")
	l.Info().Msg("visible")
	assert.NotContains(t, buf.String(), "descartado")
	assert.Contains(t, buf.String(), "visible")
}

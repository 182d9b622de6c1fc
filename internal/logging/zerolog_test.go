package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timeZero time.Time

func TestNewZerolog_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, "info", "database")
	log.Info().Str("path", "runs.db").Msg("Using local SQLite DB")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "database", rec["component"])
	assert.Equal(t, "runs.db", rec["path"])
	assert.Equal(t, "Using local SQLite DB", rec["message"])
	assert.Contains(t, rec, "time")
}

func TestNewZerolog_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, "WARN", "influx")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewZerolog_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, "chatty", "influx")
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

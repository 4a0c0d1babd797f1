package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Defaults()
	cfg.LogLevel = "loud"

	log := NewWithOutput(cfg, &buf)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level")
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Defaults()
	cfg.Environment = "production"

	log := NewWithOutput(cfg, &buf)
	log.WithField("cycle_id", "abc").Info("poll finished")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "poll finished", line["msg"])
	assert.Equal(t, "abc", line["cycle_id"])
	assert.NotEmpty(t, line["time"])
}

func TestNew_DevelopmentWritesText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(config.Defaults(), &buf)
	log.Error("send failed")

	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), `msg="send failed"`)
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
log:
  level: debug
  format: console
loop:
  ticks: 10
  interval: 5ms
  shards: 2
entities:
  - name: walker
    count: 3
    position: {x: 1, y: 2}
    velocity: {x: 0.5, y: 0}
  - name: rock
    position: {x: 0, y: 0}
    health: {max: 10, decay: 1}
`

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, uint64(10), cfg.Loop.Ticks)
	assert.Equal(t, 5*time.Millisecond, cfg.Loop.Interval)
	assert.Equal(t, 2, cfg.Loop.Shards)
	require.Len(t, cfg.Entities, 2)
	assert.Equal(t, 3, cfg.Entities[0].Count)
	assert.Equal(t, &Vector{X: 0.5}, cfg.Entities[0].Velocity)
	assert.Nil(t, cfg.Entities[0].Health)
	assert.Equal(t, &HealthConfig{Max: 10, Decay: 1}, cfg.Entities[1].Health)
	assert.Equal(t, "cpu", cfg.Profile.Mode, "defaults survive partial documents")
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown key", yaml: "loop:\n  tick: 3\n"},
		{name: "bad level", yaml: "log:\n  level: loud\n"},
		{name: "bad format", yaml: "log:\n  format: xml\n"},
		{name: "negative interval", yaml: "loop:\n  interval: -1s\n"},
		{name: "no shards", yaml: "loop:\n  shards: 0\n"},
		{name: "bad profile mode", yaml: "profile:\n  enabled: true\n  mode: block\n"},
		{name: "unnamed entity", yaml: "entities:\n  - count: 1\n"},
		{name: "duplicate entity", yaml: "entities:\n  - name: a\n  - name: a\n"},
		{name: "negative count", yaml: "entities:\n  - name: a\n    count: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Entities, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLogConfig_Logger(t *testing.T) {
	logger, err := LogConfig{Level: "warn", Format: "json"}.Logger()
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = LogConfig{Level: "nope"}.Logger()
	assert.Error(t, err)
}

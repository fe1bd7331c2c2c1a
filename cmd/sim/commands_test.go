package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(args ...string) error {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func TestRunCommand(t *testing.T) {
	path := writeConfig(t, `
log: {level: error}
loop: {ticks: 2, interval: 0s}
entities:
  - name: walker
    count: 2
    position: {x: 0, y: 0}
    velocity: {x: 1, y: 1}
`)

	assert.NoError(t, execute("run", "--config", path, "--shards", "2"))
	assert.NoError(t, execute("run", "-c", path, "--ticks", "1"))
}

func TestRunCommand_InvalidOverride(t *testing.T) {
	path := writeConfig(t, "log: {level: error}\n")

	assert.Error(t, execute("run", "-c", path, "--shards", "0"))
}

func TestCheckCommand(t *testing.T) {
	good := writeConfig(t, "log: {level: error}\nentities:\n  - name: rock\n    health: {max: 3}\n")
	bad := writeConfig(t, "log: {level: error}\nentities:\n  - name: rock\n    health: {max: 0}\n")

	assert.NoError(t, execute("check", "-c", good))
	assert.Error(t, execute("check", "-c", bad))
	assert.Error(t, execute("check", "-c", filepath.Join(t.TempDir(), "missing.yaml")))
}

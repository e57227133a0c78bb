package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "", configPath([]string{"job", "list"}))
	assert.Equal(t, "/tmp/c.yaml", configPath([]string{"--config", "/tmp/c.yaml", "job", "list"}))
	assert.Equal(t, "/tmp/c.yaml", configPath([]string{"job", "shift", "abc", "--start", "2024-01-08", "--config=/tmp/c.yaml"}))
}

func TestRun_InMemoryDB(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JOBTRACK_DB", ":memory:")

	assert.NoError(t, run([]string{"job", "list"}))
	assert.Error(t, run([]string{"job", "show", "missing"}))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Urgency.WindowDays)
	assert.False(t, cfg.Log.UseCases)
	assert.Equal(t, ColorAuto, cfg.Display.Color)
	assert.Equal(t, "jobtrack.db", filepath.Base(cfg.DB.Path))
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
db:
  path: /tmp/site.db
log:
  use_cases: true
urgency:
  window_days: 14
display:
  color: never
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/site.db", cfg.DB.Path)
	assert.True(t, cfg.Log.UseCases)
	assert.Equal(t, 14, cfg.Urgency.WindowDays)
	assert.Equal(t, ColorNever, cfg.Display.Color)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "urgency:\n  window_days: 14\n")
	t.Setenv("JOBTRACK_URGENCY_WINDOW_DAYS", "3")
	t.Setenv("JOBTRACK_DB", "/tmp/env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Urgency.WindowDays)
	assert.Equal(t, "/tmp/env.db", cfg.DB.Path)
}

func TestLoad_LegacyDBEnvWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JOBTRACK_DB", "/tmp/legacy.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/legacy.db", cfg.DB.Path)
	assert.Equal(t, 7, cfg.Urgency.WindowDays)
}

func TestLoad_DBPathEnvWinsOverLegacy(t *testing.T) {
	path := writeConfig(t, "db:\n  path: /tmp/file.db\n")
	t.Setenv("JOBTRACK_DB", "/tmp/legacy.db")
	t.Setenv("JOBTRACK_DB_PATH", "/tmp/nested.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/nested.db", cfg.DB.Path)
}

func TestLoad_EnvOverridesNestedKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JOBTRACK_LOG_USE_CASES", "true")
	t.Setenv("JOBTRACK_DISPLAY_COLOR", "never")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Log.UseCases)
	assert.Equal(t, ColorNever, cfg.Display.Color)
}

func TestLoad_RejectsInvalidWindow(t *testing.T) {
	path := writeConfig(t, "urgency:\n  window_days: 0\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "window_days")
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "urgency: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_Color(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Display.Color = "sometimes"
	assert.ErrorContains(t, cfg.Validate(), "display.color")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "planhub.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, cfg.Submit.Delay)
	assert.Equal(t, 2*time.Second, cfg.Upload.Delay)
	assert.Equal(t, 3*time.Second, cfg.Upload.ResetAfter)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, ":memory:", cfg.Catalog.DSN)
	assert.Equal(t, DefaultLogFile(), cfg.Log.File)
}

func TestLoad_EmptyDirSkipsFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Submit, cfg.Submit)
}

func TestLoad_File(t *testing.T) {
	dir := writeConfig(t, `
submit:
  delay: 250ms
upload:
  delay: 1s
  reset_after: 5s
log:
  level: debug
  file: /tmp/planhub-test.log
`)
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Submit.Delay)
	assert.Equal(t, time.Second, cfg.Upload.Delay)
	assert.Equal(t, 5*time.Second, cfg.Upload.ResetAfter)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/planhub-test.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "submit:\n  delay: 250ms\n")
	t.Setenv("PLANHUB_SUBMIT_DELAY", "10ms")
	t.Setenv("PLANHUB_LOG_LEVEL", "warn")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.Submit.Delay)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("PLANHUB_LOG_FILE", "~/logs/x.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "x.log"), cfg.Log.File)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("PLANHUB_UPLOAD_DELAY", "soon")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Setenv("PLANHUB_LOG_LEVEL", "chatty")
	_, err := Load("")
	assert.ErrorContains(t, err, "log.level")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := writeConfig(t, "submit: [unclosed\n")
	_, err := Load(dir)
	assert.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Submit.Delay = -time.Second
	assert.ErrorContains(t, cfg.Validate(), "submit.delay")

	cfg = Default()
	cfg.Log.MaxSizeMB = 0
	assert.ErrorContains(t, cfg.Validate(), "max_size_mb")

	cfg = Default()
	cfg.Catalog.DSN = ""
	assert.ErrorContains(t, cfg.Validate(), "catalog.dsn")
}

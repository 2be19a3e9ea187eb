package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func TestManager_LoadWithoutFileUsesDefaults(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, DefaultConfig(), m.Get())
	assert.Empty(t, m.ConfigFileUsed())
	assert.Error(t, m.Watch(), "nothing to watch without a file")
}

func TestManager_LoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, `
[tooltip]
preset = "compact"
placement = "Left"
hide_delay_ms = 250

[playground]
hosts = 3
`)
	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, PresetCompact, cfg.Tooltip.Preset)
	assert.Equal(t, "left", cfg.Tooltip.Placement)
	assert.Equal(t, 250, cfg.Tooltip.HideDelayMs)
	assert.Equal(t, 3, cfg.Playground.Hosts)
	assert.Equal(t, defaultScrollStep, cfg.Playground.ScrollStep, "unset keys keep defaults")
	assert.Equal(t, "compact", m.Value("tooltip.preset"))
}

func TestManager_EnvOverridesLogLevel(t *testing.T) {
	t.Setenv("DUMBTIP_LOG_LEVEL", "debug")

	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, m.Load())
	assert.Equal(t, "debug", m.Get().Logging.Level)
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "[tooltip]\npreset = \"glacial\"\n")

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tooltip.preset")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "[tooltip\n")

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	assert.Error(t, m.Load())
}

func TestManager_SaveThenReloadNotifies(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Playground.Hosts = 2
	require.NoError(t, m.Save(cfg))
	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.Equal(t, 2, m.Get().Playground.Hosts)

	var got *Config
	m.OnConfigChange(func(c *Config) { got = c })

	writeFile(t, dir, "[playground]\nhosts = 9\n")
	require.NoError(t, m.Reload())
	require.NotNil(t, got)
	assert.Equal(t, 9, got.Playground.Hosts)
	assert.Equal(t, 9, m.Get().Playground.Hosts)
}

func TestManager_ReloadKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "[playground]\nhosts = 5\n")
	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	writeFile(t, dir, "[playground]\nhosts = 50\n")
	require.Error(t, m.Reload())
	assert.Equal(t, 5, m.Get().Playground.Hosts)
}

func TestManager_SaveRejectsInvalid(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Playground.ScrollStep = 0
	assert.Error(t, m.Save(cfg))
	assert.Error(t, m.Save(nil))
}

package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{name: "unknown preset", mutate: func(c *Config) { c.Tooltip.Preset = "slow" }, key: "tooltip.preset"},
		{name: "unknown placement", mutate: func(c *Config) { c.Tooltip.Placement = "middle" }, key: "tooltip.placement"},
		{name: "negative show delay", mutate: func(c *Config) { c.Tooltip.ShowDelayMs = -1 }, key: "tooltip.show_delay_ms"},
		{name: "negative hide delay", mutate: func(c *Config) { c.Tooltip.HideDelayMs = -5 }, key: "tooltip.hide_delay_ms"},
		{name: "negative offset", mutate: func(c *Config) { c.Tooltip.Offset = -2 }, key: "tooltip.offset"},
		{name: "NaN offset", mutate: func(c *Config) { c.Tooltip.Offset = math.NaN() }, key: "tooltip.offset"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, key: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, key: "logging.format"},
		{name: "no hosts", mutate: func(c *Config) { c.Playground.Hosts = 0 }, key: "playground.hosts"},
		{name: "too many hosts", mutate: func(c *Config) { c.Playground.Hosts = MaxHosts + 1 }, key: "playground.hosts"},
		{name: "zero scroll step", mutate: func(c *Config) { c.Playground.ScrollStep = 0 }, key: "playground.scroll_step"},
		{name: "bad accent color", mutate: func(c *Config) { c.Playground.Palette.Accent = "blue" }, key: "playground.palette.accent"},
		{name: "short host color", mutate: func(c *Config) { c.Playground.Palette.HostHover = "#fff" }, key: "playground.palette.host_hover"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidateConfig_ListsEveryError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tooltip.Preset = "nope"
	cfg.Playground.Hosts = 99

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tooltip.preset")
	assert.Contains(t, err.Error(), "playground.hosts")
}

func TestNormalizeConfig(t *testing.T) {
	cfg := &Config{
		Tooltip: TooltipConfig{Preset: " Compact ", Placement: "TOP-END"},
		Logging: LoggingConfig{Level: "DEBUG"},
	}
	normalizeConfig(cfg)

	assert.Equal(t, PresetCompact, cfg.Tooltip.Preset)
	assert.Equal(t, "top-end", cfg.Tooltip.Placement)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	empty := &Config{}
	normalizeConfig(empty)
	assert.Equal(t, PresetClassic, empty.Tooltip.Preset)
	assert.Equal(t, "bottom", empty.Tooltip.Placement)
}

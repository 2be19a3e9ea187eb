// Package config loads dumbtip's configuration with viper: TOML file,
// DUMBTIP_ environment overrides, defaults set in code and hot reload.
package config

import (
	"time"

	"github.com/bnema/dumbtip/internal/domain/entity"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Preset names a bundle of tooltip timings.
type Preset string

const (
	// PresetClassic lingers three seconds after the pointer leaves.
	PresetClassic Preset = "classic"
	// PresetCompact hides almost immediately and sits further from the host.
	PresetCompact Preset = "compact"
)

// PresetValues are the timings a preset stands for.
type PresetValues struct {
	ShowDelay time.Duration
	HideDelay time.Duration
	Offset    float64
}

var presets = map[Preset]PresetValues{
	PresetClassic: {ShowDelay: 300 * time.Millisecond, HideDelay: 3000 * time.Millisecond, Offset: 6},
	PresetCompact: {ShowDelay: 300 * time.Millisecond, HideDelay: 100 * time.Millisecond, Offset: 10},
}

// Values returns the timings of p.
func (p Preset) Values() (PresetValues, bool) {
	v, ok := presets[p]
	return v, ok
}

// Config represents the complete configuration for dumbtip.
type Config struct {
	Tooltip    TooltipConfig    `mapstructure:"tooltip" toml:"tooltip" json:"tooltip"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Playground PlaygroundConfig `mapstructure:"playground" toml:"playground" json:"playground"`
}

// TooltipConfig holds the defaults applied to every tooltip. Non-zero
// delays and offset override the preset.
type TooltipConfig struct {
	Preset      Preset  `mapstructure:"preset" toml:"preset" json:"preset" jsonschema:"enum=classic,enum=compact"`
	Placement   string  `mapstructure:"placement" toml:"placement" json:"placement" jsonschema:"enum=top,enum=top-start,enum=top-end,enum=bottom,enum=bottom-start,enum=bottom-end,enum=left,enum=right"`
	ShowDelayMs int     `mapstructure:"show_delay_ms" toml:"show_delay_ms" json:"show_delay_ms" jsonschema:"minimum=0"`
	HideDelayMs int     `mapstructure:"hide_delay_ms" toml:"hide_delay_ms" json:"hide_delay_ms" jsonschema:"minimum=0"`
	Offset      float64 `mapstructure:"offset" toml:"offset" json:"offset" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// PlaygroundConfig configures the terminal playground.
type PlaygroundConfig struct {
	Hosts      int           `mapstructure:"hosts" toml:"hosts" json:"hosts" jsonschema:"minimum=1,maximum=12"`
	ScrollStep int           `mapstructure:"scroll_step" toml:"scroll_step" json:"scroll_step" jsonschema:"minimum=1"`
	Palette    PaletteConfig `mapstructure:"palette" toml:"palette" json:"palette"`
}

// PaletteConfig holds playground colors as hex strings.
type PaletteConfig struct {
	Accent    string `mapstructure:"accent" toml:"accent" json:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Text      string `mapstructure:"text" toml:"text" json:"text" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Muted     string `mapstructure:"muted" toml:"muted" json:"muted" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Host      string `mapstructure:"host" toml:"host" json:"host" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	HostHover string `mapstructure:"host_hover" toml:"host_hover" json:"host_hover" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}

// EffectiveTooltip is a TooltipConfig with the preset applied.
type EffectiveTooltip struct {
	Side      entity.Side
	ShowDelay time.Duration
	HideDelay time.Duration
	Offset    float64
}

// Effective resolves the preset and explicit overrides. Invalid values
// fall back to the classic preset and the default side; Load rejects
// them before this is reached.
func (t TooltipConfig) Effective() EffectiveTooltip {
	base, ok := t.Preset.Values()
	if !ok {
		base = presets[PresetClassic]
	}
	side, err := entity.ParseSide(t.Placement)
	if err != nil {
		side = entity.DefaultSide
	}

	eff := EffectiveTooltip{
		Side:      side,
		ShowDelay: base.ShowDelay,
		HideDelay: base.HideDelay,
		Offset:    base.Offset,
	}
	if t.ShowDelayMs > 0 {
		eff.ShowDelay = time.Duration(t.ShowDelayMs) * time.Millisecond
	}
	if t.HideDelayMs > 0 {
		eff.HideDelay = time.Duration(t.HideDelayMs) * time.Millisecond
	}
	if t.Offset > 0 {
		eff.Offset = t.Offset
	}
	return eff
}

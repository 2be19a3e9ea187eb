package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/dumbtip/internal/domain/entity"
	"github.com/bnema/dumbtip/internal/domain/validation"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// normalizeConfig lowercases enum-like strings and fills empty ones.
func normalizeConfig(cfg *Config) {
	cfg.Tooltip.Preset = Preset(strings.ToLower(strings.TrimSpace(string(cfg.Tooltip.Preset))))
	if cfg.Tooltip.Preset == "" {
		cfg.Tooltip.Preset = PresetClassic
	}
	cfg.Tooltip.Placement = strings.ToLower(strings.TrimSpace(cfg.Tooltip.Placement))
	if cfg.Tooltip.Placement == "" {
		cfg.Tooltip.Placement = string(entity.DefaultSide)
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

// validateConfig reports every invalid value in one error.
func validateConfig(cfg *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateTooltip(cfg)...)
	validationErrors = append(validationErrors, validateLogging(cfg)...)
	validationErrors = append(validationErrors, validatePlayground(cfg)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateTooltip(cfg *Config) []string {
	var validationErrors []string
	t := cfg.Tooltip

	if _, ok := t.Preset.Values(); !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("tooltip.preset must be one of: %s, %s (got %q)", PresetClassic, PresetCompact, t.Preset))
	}
	if _, err := entity.ParseSide(t.Placement); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("tooltip.placement: %v", err))
	}
	if t.ShowDelayMs < 0 {
		validationErrors = append(validationErrors, "tooltip.show_delay_ms must be non-negative")
	}
	if t.HideDelayMs < 0 {
		validationErrors = append(validationErrors, "tooltip.hide_delay_ms must be non-negative")
	}
	if t.Offset < 0 || t.Offset != t.Offset {
		validationErrors = append(validationErrors, "tooltip.offset must be a non-negative number")
	}
	return validationErrors
}

func validateLogging(cfg *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, cfg.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: %s", strings.Join(validLogLevels, ", ")))
	}
	if !slices.Contains(validLogFormats, cfg.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: %s", strings.Join(validLogFormats, ", ")))
	}
	return validationErrors
}

func validatePlayground(cfg *Config) []string {
	var validationErrors []string
	p := cfg.Playground
	if p.Hosts < MinHosts || p.Hosts > MaxHosts {
		validationErrors = append(validationErrors,
			fmt.Sprintf("playground.hosts must be between %d and %d", MinHosts, MaxHosts))
	}
	if p.ScrollStep < 1 {
		validationErrors = append(validationErrors, "playground.scroll_step must be at least 1")
	}
	validationErrors = append(validationErrors, validation.ValidatePaletteHex("playground.palette",
		[]string{"accent", "text", "muted", "host", "host_hover"},
		map[string]string{
			"accent":     p.Palette.Accent,
			"text":       p.Palette.Text,
			"muted":      p.Palette.Muted,
			"host":       p.Palette.Host,
			"host_hover": p.Palette.HostHover,
		})...)
	return validationErrors
}

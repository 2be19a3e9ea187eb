package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/bnema/dumbtip/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionTooltip    = "Tooltip"
	SectionLogging    = "Logging"
	SectionPlayground = "Playground"
)

// GenerateSchema returns the JSON schema of Config.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/dumbtip/config.schema.json"
	schema.Title = "dumbtip configuration"
	schema.Description = "Tooltip timings and placement, logging and playground settings for dumbtip"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json next to config.toml in dir.
func WriteSchemaFile(dir string) (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}
	if err := ensureDir(dir); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	d := DefaultConfig()
	classic, _ := PresetClassic.Values()

	sides := make([]string, 0, len(entity.AllSides()))
	for _, s := range entity.AllSides() {
		sides = append(sides, string(s))
	}

	return []entity.ConfigKeyInfo{
		{
			Key: "tooltip.preset", Type: "string", Default: string(d.Tooltip.Preset),
			Description: "Timing bundle applied before explicit overrides",
			Values:      []string{string(PresetClassic), string(PresetCompact)},
			Section:     SectionTooltip,
		},
		{
			Key: "tooltip.placement", Type: "string", Default: d.Tooltip.Placement,
			Description: "Preferred side of the host", Values: sides, Section: SectionTooltip,
		},
		{
			Key: "tooltip.show_delay_ms", Type: "int", Default: "0",
			Description: "Hover time before showing; 0 uses the preset (" + ms(classic.ShowDelay) + " for classic)",
			Range:       ">=0", Section: SectionTooltip,
		},
		{
			Key: "tooltip.hide_delay_ms", Type: "int", Default: "0",
			Description: "Linger time after leaving; 0 uses the preset (" + ms(classic.HideDelay) + " for classic)",
			Range:       ">=0", Section: SectionTooltip,
		},
		{
			Key: "tooltip.offset", Type: "float64", Default: "0",
			Description: "Gap between host and bubble; 0 uses the preset", Range: ">=0", Section: SectionTooltip,
		},
		{
			Key: "logging.level", Type: "string", Default: d.Logging.Level,
			Description: "Minimum log level", Values: validLogLevels, Section: SectionLogging,
		},
		{
			Key: "logging.format", Type: "string", Default: d.Logging.Format,
			Description: "Log output format", Values: validLogFormats, Section: SectionLogging,
		},
		{
			Key: "playground.hosts", Type: "int", Default: strconv.Itoa(d.Playground.Hosts),
			Description: "Number of demo hosts", Range: fmt.Sprintf("%d-%d", MinHosts, MaxHosts), Section: SectionPlayground,
		},
		{
			Key: "playground.scroll_step", Type: "int", Default: strconv.Itoa(d.Playground.ScrollStep),
			Description: "Rows scrolled per arrow key", Range: ">=1", Section: SectionPlayground,
		},
		{
			Key: "playground.palette.accent", Type: "string", Default: d.Playground.Palette.Accent,
			Description: "Tooltip border color", Section: SectionPlayground,
		},
		{
			Key: "playground.palette.text", Type: "string", Default: d.Playground.Palette.Text,
			Description: "Tooltip text color", Section: SectionPlayground,
		},
		{
			Key: "playground.palette.muted", Type: "string", Default: d.Playground.Palette.Muted,
			Description: "Footer and filler color", Section: SectionPlayground,
		},
		{
			Key: "playground.palette.host", Type: "string", Default: d.Playground.Palette.Host,
			Description: "Host box color", Section: SectionPlayground,
		},
		{
			Key: "playground.palette.host_hover", Type: "string", Default: d.Playground.Palette.HostHover,
			Description: "Hovered host box color", Section: SectionPlayground,
		},
	}
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

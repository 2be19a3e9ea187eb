package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtip/internal/domain/entity"
)

// ConfigSchemaRenderer renders configuration keys with their values.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders keys grouped by section, in the given section order.
// current maps a key to its resolved value; keys differing from their
// default are highlighted.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo, sections []string, current map[string]string) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	grouped := groupBySection(keys)
	parts := []string{r.renderHeader(), ""}
	for _, section := range sections {
		if sectionKeys, ok := grouped[section]; ok {
			parts = append(parts, r.renderSection(section, sectionKeys, current), "")
		}
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders keys as JSON, each with its current value.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo, current map[string]string) (string, error) {
	type keyWithValue struct {
		entity.ConfigKeyInfo
		Value string `json:"value"`
	}
	out := make([]keyWithValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, keyWithValue{ConfigKeyInfo: k, Value: current[k.Key]})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Configuration"))
}

func groupBySection(keys []entity.ConfigKeyInfo) map[string][]entity.ConfigKeyInfo {
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		sections[key.Section] = append(sections[key.Section], key)
	}
	return sections
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo, current map[string]string) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key, current))
	}
	content := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.Render(content)
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo, current map[string]string) string {
	keyStyle := r.theme.Normal.Bold(true)
	valueStyle := r.theme.Normal

	value, ok := current[key.Key]
	if !ok {
		value = key.Default
	}
	if value != key.Default {
		valueStyle = r.theme.Highlight
	}

	line := fmt.Sprintf("%s = %s  %s",
		keyStyle.Render(key.Key),
		valueStyle.Render(value),
		r.theme.Subtle.Render("("+key.Type+", default "+key.Default+")"),
	)
	line += "\n  " + r.theme.Subtle.Render(key.Description)

	if len(key.Values) > 0 {
		line += "\n  " + r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", "))
	} else if key.Range != "" {
		line += "\n  " + r.theme.Normal.Render("Range: "+key.Range)
	}
	return line
}

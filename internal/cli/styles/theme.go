// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtip/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.PaletteConfig)
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	Host      lipgloss.Color
	HostHover lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style

	// Playground styles
	Bubble        lipgloss.Style
	HostBox       lipgloss.Style
	HostBoxHover  lipgloss.Style
	Filler        lipgloss.Style
	StatusBar     lipgloss.Style
	StatusBarItem lipgloss.Style
}

// NewTheme creates a Theme from config, falling back to the default palette.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultConfig().Playground.Palette
	if cfg != nil {
		p = mergePalette(p, cfg.Playground.Palette)
	}
	return NewThemeFromPalette(p)
}

func mergePalette(base, over config.PaletteConfig) config.PaletteConfig {
	pick := func(a, b string) string {
		if b != "" {
			return b
		}
		return a
	}
	return config.PaletteConfig{
		Accent:    pick(base.Accent, over.Accent),
		Text:      pick(base.Text, over.Text),
		Muted:     pick(base.Muted, over.Muted),
		Host:      pick(base.Host, over.Host),
		HostHover: pick(base.HostHover, over.HostHover),
	}
}

// NewThemeFromPalette creates a Theme from a PaletteConfig.
func NewThemeFromPalette(p config.PaletteConfig) *Theme {
	t := &Theme{
		Text:      lipgloss.Color(p.Text),
		Muted:     lipgloss.Color(p.Muted),
		Accent:    lipgloss.Color(p.Accent),
		Host:      lipgloss.Color(p.Host),
		HostHover: lipgloss.Color(p.HostHover),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color("#4ade80"),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Muted)

	// The overlay host swaps the border per side; only colors and
	// padding of Bubble matter.
	t.Bubble = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.HostBox = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Host).
		Padding(0, 1)

	t.HostBoxHover = t.HostBox.
		BorderForeground(t.HostHover).
		Bold(true)

	t.Filler = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.StatusBarItem = lipgloss.NewStyle().
		Foreground(t.Accent)
}

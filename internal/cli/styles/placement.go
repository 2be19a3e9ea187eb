package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtip/internal/application/usecase"
)

// PlacementRenderer renders the result of `dumbtip place`.
type PlacementRenderer struct {
	theme *Theme
}

// NewPlacementRenderer creates a new PlacementRenderer.
func NewPlacementRenderer(theme *Theme) *PlacementRenderer {
	return &PlacementRenderer{theme: theme}
}

// Render renders the computed position and flip status.
func (r *PlacementRenderer) Render(out *usecase.ComputePlacementOutput) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	label := r.theme.Subtle

	lines := []string{
		fmt.Sprintf("%s %s", iconStyle.Render(IconComment), r.theme.Title.Render("Placement")),
		fmt.Sprintf("%s %s", label.Render("top: "), r.theme.Normal.Render(formatNumber(out.Placement.Top))),
		fmt.Sprintf("%s %s", label.Render("left:"), r.theme.Normal.Render(formatNumber(out.Placement.Left))),
		fmt.Sprintf("%s %s", label.Render("side:"), r.theme.Highlight.Render(string(out.Placement.Side))),
	}
	if out.Flipped {
		lines = append(lines, fmt.Sprintf("%s flipped from %s",
			lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconFlip),
			r.theme.Normal.Render(string(out.Requested)),
		))
	}
	if out.Overflows {
		lines = append(lines, r.theme.WarningStyle.Render(IconWarning+" still overflows the viewport"))
	}
	return r.theme.Box.Render(strings.Join(lines, "\n"))
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

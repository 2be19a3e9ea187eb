package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtip/internal/application/usecase"
)

// SimulationRenderer renders scenario timelines.
type SimulationRenderer struct {
	theme *Theme
}

// NewSimulationRenderer creates a new SimulationRenderer.
func NewSimulationRenderer(theme *Theme) *SimulationRenderer {
	return &SimulationRenderer{theme: theme}
}

// Render renders one run: a header, the timeline and the summary. err
// is the run's failure, if any.
func (r *SimulationRenderer) Render(out *usecase.SimulateOutput, err error) string {
	var sb strings.Builder

	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
	if err != nil {
		icon = lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", icon, r.theme.Title.Render(out.Name)))

	for _, e := range out.Timeline {
		sb.WriteString(r.renderEntry(e))
		sb.WriteString("\n")
	}

	s := out.Summary
	sb.WriteString(r.theme.Subtle.Render(fmt.Sprintf(
		"shown %d, hidden %d, max attached %d, leaked %d, end %dms",
		s.Shown, s.Hidden, s.MaxAttached, s.Leaked, s.EndMs,
	)))
	if s.ActiveAtEnd != "" {
		sb.WriteString(r.theme.Subtle.Render(", active " + s.ActiveAtEnd))
	}
	if err != nil {
		sb.WriteString("\n" + r.theme.ErrorStyle.Render(err.Error()))
	}
	return sb.String()
}

// RenderFailure renders a scenario that could not be run at all.
func (r *SimulationRenderer) RenderFailure(path string, err error) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
	return fmt.Sprintf("%s %s\n%s", icon, r.theme.Title.Render(path), r.theme.ErrorStyle.Render(err.Error()))
}

func (r *SimulationRenderer) renderEntry(e usecase.TimelineEntry) string {
	at := r.theme.Subtle.Render(fmt.Sprintf("%7dms", e.AtMs))
	name := r.theme.Normal.Render(fmt.Sprintf("%-12s", e.Tooltip))

	var what string
	switch e.Kind {
	case usecase.TimelineEvent:
		what = r.theme.Highlight.Render(e.What)
	case usecase.TimelinePhase:
		what = r.theme.Subtle.Render(e.What)
	default:
		what = r.theme.Normal.Render(e.What)
	}
	if e.Placement != nil {
		what += r.theme.Subtle.Render(fmt.Sprintf(" top=%s left=%s side=%s",
			formatNumber(e.Placement.Top), formatNumber(e.Placement.Left), e.Placement.Side))
	}
	return fmt.Sprintf("%s  %s %s", at, name, what)
}

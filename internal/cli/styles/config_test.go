package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtip/internal/application/usecase"
	"github.com/bnema/dumbtip/internal/cli/styles"
	"github.com/bnema/dumbtip/internal/domain/entity"
	"github.com/bnema/dumbtip/internal/infrastructure/config"
)

func TestConfigRenderer_RenderConfigFile(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(config.DefaultConfig()))

	require.Contains(t, r.RenderConfigFile("/tmp/dumbtip/config.toml", true), "found")
	require.Contains(t, r.RenderConfigFile("/tmp/dumbtip/config.toml", false), "using defaults")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestConfigSchemaRenderer_ShowsCurrentValues(t *testing.T) {
	theme := styles.NewTheme(nil)
	r := styles.NewConfigSchemaRenderer(theme)
	keys := config.NewSchemaProvider().GetSchema()

	out := r.Render(keys, []string{config.SectionTooltip}, map[string]string{"tooltip.preset": "compact"})
	assert.Contains(t, out, "tooltip.preset")
	assert.Contains(t, out, "compact")
	assert.NotContains(t, out, "playground.hosts", "only requested sections are rendered")

	js, err := r.RenderJSON(keys[:1], map[string]string{"tooltip.preset": "compact"})
	require.NoError(t, err)
	assert.Contains(t, js, `"value": "compact"`)
}

func TestPlacementRenderer_Render(t *testing.T) {
	r := styles.NewPlacementRenderer(styles.NewTheme(nil))
	out := r.Render(&usecase.ComputePlacementOutput{
		Placement: entity.Placement{Top: 64, Left: 85.5, Side: entity.SideTop},
		Requested: entity.SideBottom,
		Flipped:   true,
	})

	assert.Contains(t, out, "64")
	assert.Contains(t, out, "85.50")
	assert.Contains(t, out, "flipped from bottom")
	assert.NotContains(t, out, "overflows")
}

func TestSimulationRenderer_Render(t *testing.T) {
	r := styles.NewSimulationRenderer(styles.NewTheme(nil))
	out := &usecase.SimulateOutput{
		Name: "demo",
		Timeline: []usecase.TimelineEntry{
			{AtMs: 0, Tooltip: "a", Kind: usecase.TimelineEvent, What: "enter"},
			{AtMs: 300, Tooltip: "a", Kind: usecase.TimelineOverlay, What: "position",
				Placement: &entity.Placement{Top: 10, Left: 20, Side: entity.SideBottom}},
		},
		Summary: usecase.SimulationSummary{Shown: 1, MaxAttached: 1, ActiveAtEnd: "a"},
	}

	text := r.Render(out, nil)
	assert.Contains(t, text, "demo")
	assert.Contains(t, text, "enter")
	assert.Contains(t, text, "side=bottom")
	assert.Contains(t, text, "active a")

	failed := r.Render(out, usecase.ErrExclusivityViolated)
	assert.Contains(t, failed, usecase.ErrExclusivityViolated.Error())
}

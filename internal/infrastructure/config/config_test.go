package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbtip/internal/domain/entity"
)

func TestTooltipConfig_Effective(t *testing.T) {
	tests := []struct {
		name string
		cfg  TooltipConfig
		want EffectiveTooltip
	}{
		{
			name: "classic preset",
			cfg:  TooltipConfig{Preset: PresetClassic, Placement: "bottom"},
			want: EffectiveTooltip{Side: entity.SideBottom, ShowDelay: 300 * time.Millisecond, HideDelay: 3 * time.Second, Offset: 6},
		},
		{
			name: "compact preset",
			cfg:  TooltipConfig{Preset: PresetCompact, Placement: "right"},
			want: EffectiveTooltip{Side: entity.SideRight, ShowDelay: 300 * time.Millisecond, HideDelay: 100 * time.Millisecond, Offset: 10},
		},
		{
			name: "explicit values override preset",
			cfg:  TooltipConfig{Preset: PresetCompact, Placement: "top", ShowDelayMs: 50, HideDelayMs: 700, Offset: 2},
			want: EffectiveTooltip{Side: entity.SideTop, ShowDelay: 50 * time.Millisecond, HideDelay: 700 * time.Millisecond, Offset: 2},
		},
		{
			name: "invalid values fall back",
			cfg:  TooltipConfig{Preset: "other", Placement: "diagonal"},
			want: EffectiveTooltip{Side: entity.SideBottom, ShowDelay: 300 * time.Millisecond, HideDelay: 3 * time.Second, Offset: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Effective())
		})
	}
}

package placement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbtip/internal/domain/entity"
)

var (
	testHost    = entity.Rect{Top: 100, Left: 100, Width: 50, Height: 20}
	testTooltip = entity.Rect{Width: 80, Height: 30}
	roomyView   = entity.Viewport{Width: 1000, Height: 800}
)

func TestCompute_InitialPositions(t *testing.T) {
	tests := []struct {
		side     entity.Side
		wantTop  float64
		wantLeft float64
	}{
		{side: entity.SideBottom, wantTop: 126, wantLeft: 85},
		{side: entity.SideBottomStart, wantTop: 126, wantLeft: 100},
		{side: entity.SideBottomEnd, wantTop: 126, wantLeft: 70},
		{side: entity.SideTop, wantTop: 64, wantLeft: 85},
		{side: entity.SideTopStart, wantTop: 64, wantLeft: 100},
		{side: entity.SideTopEnd, wantTop: 64, wantLeft: 70},
		{side: entity.SideLeft, wantTop: 95, wantLeft: 14},
		{side: entity.SideRight, wantTop: 95, wantLeft: 156},
	}

	for _, tt := range tests {
		t.Run(string(tt.side), func(t *testing.T) {
			got := Compute(Input{
				Host:     testHost,
				Tooltip:  testTooltip,
				Side:     tt.side,
				Offset:   6,
				Viewport: roomyView,
			})

			assert.Equal(t, tt.wantTop, got.Top)
			assert.Equal(t, tt.wantLeft, got.Left)
			assert.Equal(t, tt.side, got.Side)
		})
	}
}

func TestCompute_BottomFlipsAboveWhenViewportTooShort(t *testing.T) {
	got := Compute(Input{
		Host:     testHost,
		Tooltip:  testTooltip,
		Side:     entity.SideBottom,
		Offset:   6,
		Viewport: entity.Viewport{Width: 1000, Height: 130},
	})

	assert.Equal(t, entity.SideTop, got.Side)
	assert.Equal(t, 64.0, got.Top)
	assert.Equal(t, 85.0, got.Left)
}

func TestCompute_AlignedVariantsKeepAlignmentWhenFlipped(t *testing.T) {
	got := Compute(Input{
		Host:     testHost,
		Tooltip:  testTooltip,
		Side:     entity.SideBottomEnd,
		Offset:   6,
		Viewport: entity.Viewport{Width: 1000, Height: 130},
	})

	assert.Equal(t, entity.SideTopEnd, got.Side)
	assert.Equal(t, 64.0, got.Top)
	assert.Equal(t, 70.0, got.Left)
}

func TestCompute_TopFlipsBelowNearViewportTop(t *testing.T) {
	host := entity.Rect{Top: 10, Left: 100, Width: 50, Height: 20}

	got := Compute(Input{
		Host:     host,
		Tooltip:  testTooltip,
		Side:     entity.SideTopStart,
		Offset:   6,
		Viewport: roomyView,
	})

	assert.Equal(t, entity.SideBottomStart, got.Side)
	assert.Equal(t, 36.0, got.Top)
	assert.Equal(t, 100.0, got.Left)
}

func TestCompute_LeftFlipsRightWhenNoRoom(t *testing.T) {
	host := entity.Rect{Top: 100, Left: 10, Width: 50, Height: 20}

	got := Compute(Input{
		Host:     host,
		Tooltip:  testTooltip,
		Side:     entity.SideLeft,
		Offset:   6,
		Viewport: roomyView,
	})

	assert.Equal(t, entity.SideRight, got.Side)
	assert.Equal(t, host.Right()+6, got.Left)
	assert.Equal(t, 95.0, got.Top)
}

func TestCompute_RightFlipsLeftWhenNoRoom(t *testing.T) {
	host := entity.Rect{Top: 100, Left: 900, Width: 50, Height: 20}

	got := Compute(Input{
		Host:     host,
		Tooltip:  testTooltip,
		Side:     entity.SideRight,
		Offset:   6,
		Viewport: roomyView,
	})

	assert.Equal(t, entity.SideLeft, got.Side)
	assert.Equal(t, 900.0-80-6, got.Left)
}

func TestCompute_AddsScrollOffset(t *testing.T) {
	view := roomyView
	view.ScrollTop = 500

	bottom := Compute(Input{Host: testHost, Tooltip: testTooltip, Side: entity.SideBottom, Offset: 6, Viewport: view})
	assert.Equal(t, 626.0, bottom.Top)

	view.Height = 130
	flipped := Compute(Input{Host: testHost, Tooltip: testTooltip, Side: entity.SideBottom, Offset: 6, Viewport: view})
	assert.Equal(t, entity.SideTop, flipped.Side)
	assert.Equal(t, 564.0, flipped.Top)
}

func TestCompute_AcceptsOverflowAfterFlip(t *testing.T) {
	// No room below and none above either: flips once and stays there.
	host := entity.Rect{Top: 5, Left: 100, Width: 50, Height: 10}

	got := Compute(Input{
		Host:     host,
		Tooltip:  testTooltip,
		Side:     entity.SideBottom,
		Offset:   6,
		Viewport: entity.Viewport{Width: 1000, Height: 20},
	})

	assert.Equal(t, entity.SideTop, got.Side)
	assert.Equal(t, -31.0, got.Top)
}

func TestCompute_DegenerateGeometryStaysFinite(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{name: "all zero", in: Input{}},
		{name: "zero tooltip", in: Input{Host: testHost, Side: entity.SideLeft, Viewport: roomyView}},
		{name: "zero host", in: Input{Tooltip: testTooltip, Side: entity.SideTopEnd, Offset: 6}},
		{name: "nan inputs", in: Input{
			Host:     entity.Rect{Top: math.NaN(), Width: math.NaN()},
			Tooltip:  entity.Rect{Width: math.Inf(1), Height: -3},
			Side:     entity.SideRight,
			Offset:   math.NaN(),
			Viewport: entity.Viewport{Width: math.NaN(), ScrollTop: math.Inf(-1)},
		}},
		{name: "unknown side", in: Input{Host: testHost, Tooltip: testTooltip, Side: "middle", Viewport: roomyView}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.in)

			assert.False(t, math.IsNaN(got.Top) || math.IsInf(got.Top, 0), "top %v", got.Top)
			assert.False(t, math.IsNaN(got.Left) || math.IsInf(got.Left, 0), "left %v", got.Left)
			assert.True(t, got.Side.Valid())
		})
	}
}

// TestCompute_ResolvedSideMatchesPosition checks, for every side, that the
// returned side describes where the tooltip actually ended up.
func TestCompute_ResolvedSideMatchesPosition(t *testing.T) {
	views := map[string]entity.Viewport{
		"roomy":   roomyView,
		"cramped": {Width: 160, Height: 125},
	}
	hosts := map[string]entity.Rect{
		"center": {Top: 300, Left: 400, Width: 50, Height: 20},
		"corner": {Top: 2, Left: 2, Width: 50, Height: 20},
		"edge":   {Top: 100, Left: 100, Width: 50, Height: 20},
	}

	for viewName, view := range views {
		for hostName, host := range hosts {
			for _, side := range entity.AllSides() {
				t.Run(viewName+"/"+hostName+"/"+string(side), func(t *testing.T) {
					got := Compute(Input{Host: host, Tooltip: testTooltip, Side: side, Offset: 6, Viewport: view})

					switch {
					case got.Side.IsBottom():
						assert.GreaterOrEqual(t, got.Top, host.Bottom())
					case got.Side.IsTop():
						assert.LessOrEqual(t, got.Top+testTooltip.Height, host.Top)
					case got.Side == entity.SideLeft:
						assert.LessOrEqual(t, got.Left+testTooltip.Width, host.Left)
					case got.Side == entity.SideRight:
						assert.GreaterOrEqual(t, got.Left, host.Right())
					}

					if got.Side != side {
						assert.Equal(t, side.Opposite(), got.Side, "a flip only ever goes to the opposite side")
					}
				})
			}
		}
	}
}

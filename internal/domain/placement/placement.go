// Package placement computes where a tooltip goes relative to its host.
//
// Compute is pure: the caller supplies fresh geometry for every call
// because the host can move or resize between pointer events.
package placement

import (
	"math"

	"github.com/bnema/dumbtip/internal/domain/entity"
)

// Input holds the geometry needed to place one tooltip.
// Host and Tooltip are viewport-relative bounding boxes.
type Input struct {
	Host     entity.Rect
	Tooltip  entity.Rect
	Side     entity.Side
	Offset   float64
	Viewport entity.Viewport
}

// Compute returns the document-relative position of the tooltip.
//
// The preferred side is flipped to its opposite at most once per axis
// when the viewport lacks room on that side. A flipped tooltip that
// still overflows is left where it is.
func Compute(in Input) entity.Placement {
	host := in.Host.Sanitize()
	tip := in.Tooltip.Sanitize()
	offset := nonNegative(in.Offset)
	side := in.Side
	if !side.Valid() {
		side = entity.DefaultSide
	}

	top, left := initial(host, tip, side, offset)
	resolved := side

	switch {
	case side == entity.SideLeft && host.Left < tip.Width+offset:
		left = host.Right() + offset
		resolved = entity.SideRight
	case side == entity.SideRight && nonNaN(in.Viewport.Width)-host.Right() < tip.Width+offset:
		left = host.Left - tip.Width - offset
		resolved = entity.SideLeft
	case side.IsBottom() && nonNaN(in.Viewport.Height)-host.Bottom() < tip.Height+offset:
		top = host.Top - tip.Height - offset
		resolved = side.Opposite()
	case side.IsTop() && host.Top < tip.Height+offset:
		top = host.Bottom() + offset
		resolved = side.Opposite()
	}

	return entity.Placement{
		Top:  top + nonNaN(in.Viewport.ScrollTop),
		Left: left,
		Side: resolved,
	}
}

// initial places the tooltip on side without looking at the viewport.
// Top and bottom variants center on the host's horizontal midpoint, or
// align flush with its leading/trailing edge for -start/-end. Left and
// right center on the vertical midpoint.
func initial(host, tip entity.Rect, side entity.Side, offset float64) (top, left float64) {
	dw := host.Width - tip.Width
	dh := host.Height - tip.Height

	switch {
	case side.IsBottom():
		top = host.Bottom() + offset
	case side.IsTop():
		top = host.Top - tip.Height - offset
	default:
		top = host.Top + dh/2
	}

	switch side {
	case entity.SideTopStart, entity.SideBottomStart:
		left = host.Left
	case entity.SideTopEnd, entity.SideBottomEnd:
		left = host.Right() - tip.Width
	case entity.SideLeft:
		left = host.Left - tip.Width - offset
	case entity.SideRight:
		left = host.Right() + offset
	default:
		left = host.Left + dw/2
	}
	return top, left
}

func nonNaN(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegative(v float64) float64 {
	return math.Max(nonNaN(v), 0)
}

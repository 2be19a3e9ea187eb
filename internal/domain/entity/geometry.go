// Package entity defines domain value types for tooltip placement.
package entity

import "math"

// Rect represents an element's bounding box in viewport coordinates.
// Bottom and Right are derived so a rect can never be inconsistent.
type Rect struct {
	Top    float64 `json:"top" toml:"top"`
	Left   float64 `json:"left" toml:"left"`
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Bottom returns the y coordinate of the lower edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// Sanitize replaces non-finite coordinates with zero and clamps
// negative dimensions to zero. Layout engines report zero-sized
// boxes for elements that are not rendered yet.
func (r Rect) Sanitize() Rect {
	return Rect{
		Top:    finite(r.Top),
		Left:   finite(r.Left),
		Width:  math.Max(finite(r.Width), 0),
		Height: math.Max(finite(r.Height), 0),
	}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Viewport describes the visible area of the document.
type Viewport struct {
	Width     float64 `json:"width" toml:"width"`
	Height    float64 `json:"height" toml:"height"`
	ScrollTop float64 `json:"scroll_top" toml:"scroll_top"`
}

// Placement is the computed document position of a tooltip.
type Placement struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
	Side Side    `json:"side"`
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

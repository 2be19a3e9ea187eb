package port

import "github.com/bnema/dumbtip/internal/domain/entity"

// HostGeometry reports the current bounding box of a tooltip's host
// element in viewport coordinates. It is queried on every placement.
type HostGeometry interface {
	HostRect() entity.Rect
}

// HostGeometryFunc adapts a function to HostGeometry.
type HostGeometryFunc func() entity.Rect

// HostRect implements HostGeometry.
func (f HostGeometryFunc) HostRect() entity.Rect {
	return f()
}

// ViewportProvider reports the visible area and vertical scroll offset.
type ViewportProvider interface {
	Viewport() entity.Viewport
}

// ViewportFunc adapts a function to ViewportProvider.
type ViewportFunc func() entity.Viewport

// Viewport implements ViewportProvider.
func (f ViewportFunc) Viewport() entity.Viewport {
	return f()
}

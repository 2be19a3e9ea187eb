package port

import "github.com/bnema/dumbtip/internal/domain/entity"

//go:generate mockgen -source=overlay.go -destination=mocks/mock_overlay.go -package=mocks

// OverlayHandle identifies a floating node created by an OverlayHost.
// The zero value means "no overlay".
type OverlayHandle uint64

// OverlayHost renders tooltip bubbles. The tooltip core only talks to
// this interface so any renderer (DOM, terminal, test recorder) can back it.
type OverlayHost interface {
	// Create builds a detached node holding text.
	Create(text string) OverlayHandle

	// Measure returns the node's current bounding box in viewport coordinates.
	// Only the width and height are meaningful before the node is positioned.
	Measure(h OverlayHandle) entity.Rect

	// SetPosition moves the node to document coordinates.
	SetPosition(h OverlayHandle, top, left float64)

	// Attach inserts the node at the document root.
	Attach(h OverlayHandle)

	// Detach removes the node from the document without freeing it.
	Detach(h OverlayHandle)

	// Destroy frees the node. The handle must not be used afterwards.
	Destroy(h OverlayHandle)
}

// SideMarker is implemented by overlay hosts that decorate the bubble
// according to the side it ended up on (an arrow, a CSS class).
type SideMarker interface {
	MarkSide(h OverlayHandle, side entity.Side)
}

// Package input turns raw pointer motion into per-element hover events.
package input

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbtip/internal/domain/entity"
	"github.com/bnema/dumbtip/internal/logging"
)

// HoverTarget receives pointer-enter and pointer-leave for one host.
type HoverTarget interface {
	PointerEnter()
	PointerLeave()
}

// BoundsFunc returns a host's current bounding box in the same
// coordinate space as the pointer positions passed to Move.
type BoundsFunc func() entity.Rect

type trackedHost struct {
	id     string
	bounds BoundsFunc
	target HoverTarget
	inside bool
}

// HoverTracker hit-tests pointer positions against registered hosts and
// emits enter/leave transitions. Leaves are delivered before enters so
// a target never sees the pointer in two hosts at once.
type HoverTracker struct {
	hosts []*trackedHost
	log   *zerolog.Logger
}

// NewHoverTracker creates a tracker with no hosts.
func NewHoverTracker(ctx context.Context) *HoverTracker {
	log := logging.FromContext(logging.WithComponent(ctx, "hover"))
	log.Debug().Msg("creating hover tracker")

	return &HoverTracker{log: log}
}

// Add starts tracking a host. Re-adding an id replaces the previous entry
// without emitting a leave.
func (h *HoverTracker) Add(id string, bounds BoundsFunc, target HoverTarget) {
	if bounds == nil || target == nil {
		h.log.Error().Str("host", id).Msg("cannot track host without bounds or target")
		return
	}
	h.Remove(id)
	h.hosts = append(h.hosts, &trackedHost{id: id, bounds: bounds, target: target})
}

// Remove stops tracking a host. No leave is delivered: the caller is
// expected to tear the target down.
func (h *HoverTracker) Remove(id string) {
	for i, host := range h.hosts {
		if host.id == id {
			h.hosts = append(h.hosts[:i], h.hosts[i+1:]...)
			return
		}
	}
}

// Clear stops tracking every host.
func (h *HoverTracker) Clear() {
	h.hosts = nil
}

// Move processes a pointer position.
func (h *HoverTracker) Move(x, y float64) {
	var entered []*trackedHost
	for _, host := range h.hosts {
		in := host.bounds().Contains(x, y)
		switch {
		case in && !host.inside:
			entered = append(entered, host)
		case !in && host.inside:
			host.inside = false
			h.log.Trace().Str("host", host.id).Msg("pointer leave")
			host.target.PointerLeave()
		}
	}
	for _, host := range entered {
		host.inside = true
		h.log.Trace().Str("host", host.id).Msg("pointer enter")
		host.target.PointerEnter()
	}
}

// Exit handles the pointer leaving the whole surface.
func (h *HoverTracker) Exit() {
	for _, host := range h.hosts {
		if host.inside {
			host.inside = false
			host.target.PointerLeave()
		}
	}
}

// Hovered returns the id of the first host under the pointer.
func (h *HoverTracker) Hovered() (string, bool) {
	for _, host := range h.hosts {
		if host.inside {
			return host.id, true
		}
	}
	return "", false
}

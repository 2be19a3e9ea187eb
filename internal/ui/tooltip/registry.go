// Package tooltip implements hover tooltips: a per-host show/hide state
// machine and the registry that keeps at most one of them visible.
//
// Everything in this package runs on a single event loop. Pointer
// events, timer callbacks and teardown must be delivered from that loop;
// nothing here takes a lock.
package tooltip

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbtip/internal/logging"
)

// Hider is told to hide immediately when another tooltip takes over.
type Hider interface {
	HideNow()
}

// Registry arbitrates which tooltip may be visible. It holds a direct
// reference to every registered tooltip and hides the previous holder
// itself when a new one claims activation. It owns no overlay resources.
type Registry struct {
	active  string
	members map[string]Hider
	log     *zerolog.Logger
}

// NewRegistry creates an empty registry. Create one per page (or per
// test) and pass it to every tooltip that must be mutually exclusive.
func NewRegistry(ctx context.Context) *Registry {
	return &Registry{
		members: make(map[string]Hider),
		log:     logging.FromContext(logging.WithComponent(ctx, "tooltip-registry")),
	}
}

// Register makes h reachable for hide requests under id.
func (r *Registry) Register(id string, h Hider) {
	if id == "" || h == nil {
		return
	}
	r.members[id] = h
}

// Unregister forgets id. It does not touch activation; call Release first.
func (r *Registry) Unregister(id string) {
	delete(r.members, id)
}

// Claim makes id the active tooltip and returns the previous holder.
// A different previous holder is hidden before the switch completes.
func (r *Registry) Claim(id string) (prev string, hadPrev bool) {
	prev, hadPrev = r.active, r.active != ""
	if prev == id {
		return prev, hadPrev
	}

	if hadPrev {
		if h, ok := r.members[prev]; ok {
			r.log.Debug().Str("from", prev).Str("to", id).Msg("activation moved, hiding previous")
			h.HideNow()
		}
	}
	r.active = id
	return prev, hadPrev
}

// Release clears activation only if id still holds it, so a stale
// release cannot undo a newer claim. It reports whether it cleared.
func (r *Registry) Release(id string) bool {
	if id == "" || r.active != id {
		return false
	}
	r.active = ""
	r.log.Trace().Str("tooltip_id", id).Msg("activation released")
	return true
}

// Active returns the id currently allowed to be visible.
func (r *Registry) Active() (string, bool) {
	return r.active, r.active != ""
}

// Len returns the number of registered tooltips.
func (r *Registry) Len() int {
	return len(r.members)
}

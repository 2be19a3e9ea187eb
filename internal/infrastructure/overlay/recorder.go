// Package overlay provides OverlayHost implementations.
package overlay

import (
	"time"

	"github.com/bnema/dumbtip/internal/application/port"
	"github.com/bnema/dumbtip/internal/domain/entity"
)

// Op names an overlay host call.
type Op string

const (
	OpCreate      Op = "create"
	OpAttach      Op = "attach"
	OpMeasure     Op = "measure"
	OpSetPosition Op = "set-position"
	OpMarkSide    Op = "mark-side"
	OpDetach      Op = "detach"
	OpDestroy     Op = "destroy"
)

// Call is one recorded overlay host invocation.
type Call struct {
	At     time.Duration      `json:"at"`
	Op     Op                 `json:"op"`
	Handle port.OverlayHandle `json:"handle"`
	Text   string             `json:"text,omitempty"`
	Top    float64            `json:"top,omitempty"`
	Left   float64            `json:"left,omitempty"`
	Side   entity.Side        `json:"side,omitempty"`
}

type recordedNode struct {
	text     string
	top      float64
	left     float64
	attached bool
}

// Recorder is a headless overlay host. Nodes have no real layout: their
// measured size comes from SizeOf, and every call is recorded.
type Recorder struct {
	// SizeOf returns the measured width and height for a node's text.
	SizeOf func(text string) (width, height float64)
	// Now stamps recorded calls; nil stamps zero.
	Now func() time.Duration

	next        port.OverlayHandle
	nodes       map[port.OverlayHandle]*recordedNode
	calls       []Call
	maxAttached int
}

// NewRecorder creates a recorder measuring every node as width x height.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		SizeOf: func(string) (float64, float64) { return width, height },
		nodes:  make(map[port.OverlayHandle]*recordedNode),
	}
}

// Create implements port.OverlayHost.
func (r *Recorder) Create(text string) port.OverlayHandle {
	r.next++
	r.nodes[r.next] = &recordedNode{text: text}
	r.record(Call{Op: OpCreate, Handle: r.next, Text: text})
	return r.next
}

// Measure implements port.OverlayHost.
func (r *Recorder) Measure(h port.OverlayHandle) entity.Rect {
	n, ok := r.nodes[h]
	if !ok {
		return entity.Rect{}
	}
	r.record(Call{Op: OpMeasure, Handle: h})

	var w, hgt float64
	if r.SizeOf != nil {
		w, hgt = r.SizeOf(n.text)
	}
	return entity.Rect{Top: n.top, Left: n.left, Width: w, Height: hgt}
}

// SetPosition implements port.OverlayHost.
func (r *Recorder) SetPosition(h port.OverlayHandle, top, left float64) {
	if n, ok := r.nodes[h]; ok {
		n.top, n.left = top, left
	}
	r.record(Call{Op: OpSetPosition, Handle: h, Top: top, Left: left})
}

// MarkSide implements port.SideMarker.
func (r *Recorder) MarkSide(h port.OverlayHandle, side entity.Side) {
	r.record(Call{Op: OpMarkSide, Handle: h, Side: side})
}

// Attach implements port.OverlayHost.
func (r *Recorder) Attach(h port.OverlayHandle) {
	if n, ok := r.nodes[h]; ok && !n.attached {
		n.attached = true
		if a := r.AttachedCount(); a > r.maxAttached {
			r.maxAttached = a
		}
	}
	r.record(Call{Op: OpAttach, Handle: h})
}

// Detach implements port.OverlayHost.
func (r *Recorder) Detach(h port.OverlayHandle) {
	if n, ok := r.nodes[h]; ok {
		n.attached = false
	}
	r.record(Call{Op: OpDetach, Handle: h})
}

// Destroy implements port.OverlayHost.
func (r *Recorder) Destroy(h port.OverlayHandle) {
	delete(r.nodes, h)
	r.record(Call{Op: OpDestroy, Handle: h})
}

// Calls returns every recorded call in order.
func (r *Recorder) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CountOp returns how many times op was called.
func (r *Recorder) CountOp(op Op) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// AttachedCount returns the number of nodes currently attached.
func (r *Recorder) AttachedCount() int {
	n := 0
	for _, node := range r.nodes {
		if node.attached {
			n++
		}
	}
	return n
}

// MaxAttached returns the most nodes ever attached at the same time.
func (r *Recorder) MaxAttached() int {
	return r.maxAttached
}

// Live returns the number of created but not destroyed nodes.
func (r *Recorder) Live() int {
	return len(r.nodes)
}

func (r *Recorder) record(c Call) {
	if r.Now != nil {
		c.At = r.Now()
	}
	r.calls = append(r.calls, c)
}

var (
	_ port.OverlayHost = (*Recorder)(nil)
	_ port.SideMarker  = (*Recorder)(nil)
)

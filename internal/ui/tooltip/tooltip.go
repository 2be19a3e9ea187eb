package tooltip

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbtip/internal/application/port"
	"github.com/bnema/dumbtip/internal/domain/entity"
	"github.com/bnema/dumbtip/internal/domain/placement"
	"github.com/bnema/dumbtip/internal/logging"
)

const (
	// DefaultShowDelay is the hover time before a tooltip appears.
	DefaultShowDelay = 300 * time.Millisecond
	// DefaultHideDelay is how long a tooltip lingers after the pointer leaves.
	DefaultHideDelay = 3000 * time.Millisecond
	// DefaultOffset is the gap in pixels between host and bubble.
	DefaultOffset = 6.0
)

// Phase is the position of a tooltip in its show/hide cycle.
type Phase int

const (
	PhaseIdle        Phase = iota // no overlay, no timer
	PhasePendingShow              // show timer armed
	PhaseVisible                  // overlay attached
	PhasePendingHide              // overlay attached, hide timer armed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePendingShow:
		return "pending-show"
	case PhaseVisible:
		return "visible"
	case PhasePendingHide:
		return "pending-hide"
	}
	return "unknown"
}

// Options configures one tooltip. It is copied at construction and
// never changes for the lifetime of the instance.
type Options struct {
	Text      string
	Side      entity.Side
	ShowDelay time.Duration
	HideDelay time.Duration
	Offset    float64
}

// DefaultOptions returns the options used for unset fields.
func DefaultOptions() Options {
	return Options{
		Side:      entity.DefaultSide,
		ShowDelay: DefaultShowDelay,
		HideDelay: DefaultHideDelay,
		Offset:    DefaultOffset,
	}
}

func (o Options) normalized() Options {
	if !o.Side.Valid() {
		o.Side = entity.DefaultSide
	}
	if o.ShowDelay < 0 {
		o.ShowDelay = 0
	}
	if o.HideDelay < 0 {
		o.HideDelay = 0
	}
	if o.Offset < 0 || o.Offset != o.Offset {
		o.Offset = 0
	}
	return o
}

// Transition describes a phase change, reported to Deps.OnTransition.
type Transition struct {
	ID   string
	From Phase
	To   Phase
}

// Deps are the collaborators a tooltip needs. Registry, Scheduler and
// Overlay are required. A nil Host or Viewport reads as zero geometry.
type Deps struct {
	Registry  *Registry
	Scheduler port.Scheduler
	Overlay   port.OverlayHost
	Host      port.HostGeometry
	Viewport  port.ViewportProvider

	// NewID defaults to RandomID.
	NewID IDGenerator
	// OnTransition, when set, observes every phase change.
	OnTransition func(Transition)
}

// Tooltip is the hover state machine for one host element.
//
//	Idle --enter--> PendingShow --timer--> Visible --leave--> PendingHide --timer--> Idle
//	PendingShow --leave--> Idle
//	PendingHide --enter--> Visible
//
// Any phase goes to Idle on HideNow or Teardown.
type Tooltip struct {
	id   string
	opts Options
	deps Deps

	phase     Phase
	overlay   port.OverlayHandle
	showTimer port.TimerHandle
	hideTimer port.TimerHandle
	placed    entity.Placement
	closed    bool

	log *zerolog.Logger
}

// New creates an idle tooltip and registers it with deps.Registry.
func New(ctx context.Context, opts Options, deps Deps) *Tooltip {
	if deps.Registry == nil || deps.Scheduler == nil || deps.Overlay == nil {
		panic("tooltip.New: registry, scheduler and overlay are required")
	}
	if deps.NewID == nil {
		deps.NewID = RandomID
	}

	t := &Tooltip{
		id:   deps.NewID(),
		opts: opts.normalized(),
		deps: deps,
	}
	t.log = logging.FromContext(logging.WithTooltipID(logging.WithComponent(ctx, "tooltip"), t.id))
	deps.Registry.Register(t.id, t)

	t.log.Debug().
		Str("side", string(t.opts.Side)).
		Dur("show_delay", t.opts.ShowDelay).
		Dur("hide_delay", t.opts.HideDelay).
		Msg("tooltip created")
	return t
}

// ID returns the identifier used as the registry key.
func (t *Tooltip) ID() string { return t.id }

// Options returns the effective configuration.
func (t *Tooltip) Options() Options { return t.opts }

// Phase returns the current phase.
func (t *Tooltip) Phase() Phase { return t.phase }

// HasOverlay reports whether the tooltip currently owns an overlay node.
func (t *Tooltip) HasOverlay() bool { return t.overlay != 0 }

// Placement returns the position computed by the last show.
func (t *Tooltip) Placement() (entity.Placement, bool) {
	return t.placed, t.overlay != 0
}

// PointerEnter handles the pointer entering the host.
func (t *Tooltip) PointerEnter() {
	if t.closed {
		return
	}
	t.deps.Registry.Claim(t.id)

	if t.hideTimer != 0 {
		t.deps.Scheduler.Cancel(t.hideTimer)
		t.hideTimer = 0
	}
	if t.overlay != 0 {
		t.setPhase(PhaseVisible)
		return
	}
	if t.showTimer != 0 {
		return
	}
	t.showTimer = t.deps.Scheduler.Schedule(t.opts.ShowDelay, t.onShowTimer)
	if t.showTimer == 0 {
		// scheduler refused the timer, usually because it was destroyed
		t.deps.Registry.Release(t.id)
		t.log.Debug().Msg("show timer not armed")
		return
	}
	t.setPhase(PhasePendingShow)
}

// PointerLeave handles the pointer leaving the host.
func (t *Tooltip) PointerLeave() {
	if t.closed {
		return
	}
	if t.showTimer != 0 {
		t.deps.Scheduler.Cancel(t.showTimer)
		t.showTimer = 0
		t.deps.Registry.Release(t.id)
		t.setPhase(PhaseIdle)
		return
	}
	if t.overlay == 0 {
		return
	}

	if t.hideTimer != 0 {
		t.deps.Scheduler.Cancel(t.hideTimer)
	}
	t.hideTimer = t.deps.Scheduler.Schedule(t.opts.HideDelay, t.onHideTimer)
	t.setPhase(PhasePendingHide)
}

// HideNow hides the tooltip immediately, cancelling any armed timer.
// The registry calls it when another tooltip claims activation.
func (t *Tooltip) HideNow() {
	t.cancelTimers()
	t.hide()
	t.deps.Registry.Release(t.id)
	t.setPhase(PhaseIdle)
}

// Teardown releases every resource the tooltip holds. It is safe to
// call more than once; later pointer events are ignored.
func (t *Tooltip) Teardown() {
	t.cancelTimers()
	t.hide()
	t.deps.Registry.Release(t.id)
	if !t.closed {
		t.deps.Registry.Unregister(t.id)
		t.closed = true
		t.log.Debug().Msg("tooltip torn down")
	}
	t.setPhase(PhaseIdle)
}

func (t *Tooltip) onShowTimer() {
	t.showTimer = 0
	if t.closed {
		return
	}
	t.show()
	t.setPhase(PhaseVisible)
}

func (t *Tooltip) onHideTimer() {
	t.hideTimer = 0
	t.hide()
	t.deps.Registry.Release(t.id)
	t.setPhase(PhaseIdle)
}

// show creates, attaches, measures and positions the overlay.
func (t *Tooltip) show() {
	if t.overlay != 0 {
		return
	}
	overlay := t.deps.Overlay

	h := overlay.Create(t.opts.Text)
	t.overlay = h
	overlay.Attach(h)

	t.placed = placement.Compute(placement.Input{
		Host:     t.hostRect(),
		Tooltip:  overlay.Measure(h),
		Side:     t.opts.Side,
		Offset:   t.opts.Offset,
		Viewport: t.viewport(),
	})
	overlay.SetPosition(h, t.placed.Top, t.placed.Left)
	if marker, ok := overlay.(port.SideMarker); ok {
		marker.MarkSide(h, t.placed.Side)
	}

	t.log.Debug().
		Float64("top", t.placed.Top).
		Float64("left", t.placed.Left).
		Str("side", string(t.placed.Side)).
		Msg("tooltip shown")
}

// hide detaches and destroys the overlay. No-op without one.
func (t *Tooltip) hide() {
	if t.overlay == 0 {
		return
	}
	h := t.overlay
	t.overlay = 0
	t.deps.Overlay.Detach(h)
	t.deps.Overlay.Destroy(h)
	t.log.Debug().Msg("tooltip hidden")
}

func (t *Tooltip) cancelTimers() {
	if t.showTimer != 0 {
		t.deps.Scheduler.Cancel(t.showTimer)
		t.showTimer = 0
	}
	if t.hideTimer != 0 {
		t.deps.Scheduler.Cancel(t.hideTimer)
		t.hideTimer = 0
	}
}

func (t *Tooltip) setPhase(p Phase) {
	if t.phase == p {
		return
	}
	from := t.phase
	t.phase = p
	t.log.Trace().Stringer("from", from).Stringer("to", p).Msg("phase changed")
	if t.deps.OnTransition != nil {
		t.deps.OnTransition(Transition{ID: t.id, From: from, To: p})
	}
}

func (t *Tooltip) hostRect() entity.Rect {
	if t.deps.Host == nil {
		return entity.Rect{}
	}
	return t.deps.Host.HostRect()
}

func (t *Tooltip) viewport() entity.Viewport {
	if t.deps.Viewport == nil {
		return entity.Viewport{}
	}
	return t.deps.Viewport.Viewport()
}

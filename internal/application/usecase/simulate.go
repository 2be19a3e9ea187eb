package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dumbtip/internal/application/port"
	"github.com/bnema/dumbtip/internal/domain/entity"
	"github.com/bnema/dumbtip/internal/logging"
	"github.com/bnema/dumbtip/internal/ui/tooltip"
)

// ErrExclusivityViolated is returned when a run had more than one
// overlay attached at the same time.
var ErrExclusivityViolated = errors.New("more than one tooltip overlay was attached at once")

// TimelineKind classifies a timeline entry.
type TimelineKind string

const (
	TimelineEvent   TimelineKind = "event"
	TimelinePhase   TimelineKind = "phase"
	TimelineOverlay TimelineKind = "overlay"
)

// TimelineEntry is one observable step of a simulation.
type TimelineEntry struct {
	AtMs      int64             `json:"at_ms"`
	Tooltip   string            `json:"tooltip"`
	Kind      TimelineKind      `json:"kind"`
	What      string            `json:"what"`
	Placement *entity.Placement `json:"placement,omitempty"`
}

// SimulationSummary aggregates a run.
type SimulationSummary struct {
	Shown       int    `json:"shown"`
	Hidden      int    `json:"hidden"`
	MaxAttached int    `json:"max_attached"`
	Leaked      int    `json:"leaked"`
	ActiveAtEnd string `json:"active_at_end,omitempty"`
	EndMs       int64  `json:"end_ms"`
}

// SimulateInput is a validated scenario to replay.
type SimulateInput struct {
	Scenario *entity.Scenario
}

// SimulateOutput is the result of one replay.
type SimulateOutput struct {
	Name     string            `json:"name"`
	Timeline []TimelineEntry   `json:"timeline"`
	Summary  SimulationSummary `json:"summary"`
}

// SimulateUseCase replays scripted hover sessions against real tooltip
// instances on virtual time. Each Execute gets its own registry, clock
// and overlay host, so runs are independent and may execute in parallel.
type SimulateUseCase struct {
	newClock   func() port.VirtualClock
	newOverlay func() port.OverlayHost
}

// NewSimulateUseCase creates a new SimulateUseCase.
func NewSimulateUseCase(newClock func() port.VirtualClock, newOverlay func() port.OverlayHost) *SimulateUseCase {
	return &SimulateUseCase{
		newClock:   newClock,
		newOverlay: newOverlay,
	}
}

// Execute replays the scenario and returns its timeline. The output is
// returned alongside ErrExclusivityViolated so callers can show it.
func (uc *SimulateUseCase) Execute(ctx context.Context, input SimulateInput) (*SimulateOutput, error) {
	sc := input.Scenario
	if sc == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	ctx = logging.WithScenario(ctx, sc.Name)
	log := logging.FromContext(ctx)

	run := &simRun{
		clock: uc.newClock(),
		host:  uc.newOverlay(),
		out:   &SimulateOutput{Name: sc.Name, Timeline: []TimelineEntry{}},
	}
	registry := tooltip.NewRegistry(ctx)

	tips := make(map[string]*tooltip.Tooltip, len(sc.Tooltips))
	var horizon time.Duration
	for _, def := range sc.Tooltips {
		opts := tooltipOptions(def)
		horizon = max(horizon, opts.ShowDelay, opts.HideDelay)

		name := def.Name
		tips[name] = tooltip.New(ctx, opts, tooltip.Deps{
			Registry:  registry,
			Scheduler: run.clock,
			Overlay:   &simOverlay{run: run, tooltip: name, size: def.Size},
			Host:      port.HostGeometryFunc(func() entity.Rect { return def.Host }),
			Viewport:  port.ViewportFunc(func() entity.Viewport { return sc.Viewport }),
			NewID:     func() string { return name },
			OnTransition: func(tr tooltip.Transition) {
				run.add(name, TimelinePhase, tr.From.String()+" -> "+tr.To.String(), nil)
			},
		})
	}

	for _, e := range sc.Events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		run.clock.AdvanceTo(e.At())
		run.add(e.Tooltip, TimelineEvent, string(e.Kind), nil)

		tip := tips[e.Tooltip]
		switch e.Kind {
		case entity.EventEnter:
			tip.PointerEnter()
		case entity.EventLeave:
			tip.PointerLeave()
		case entity.EventTeardown:
			tip.Teardown()
		}
	}

	// let whatever is still armed play out
	end := sc.End() + horizon
	run.clock.AdvanceTo(end)

	run.out.Summary.EndMs = end.Milliseconds()
	run.out.Summary.Leaked = run.live
	if active, ok := registry.Active(); ok {
		run.out.Summary.ActiveAtEnd = active
	}

	log.Debug().
		Int("entries", len(run.out.Timeline)).
		Int("max_attached", run.out.Summary.MaxAttached).
		Msg("scenario replayed")

	if run.out.Summary.MaxAttached > 1 {
		return run.out, fmt.Errorf("scenario %q: %w", sc.Name, ErrExclusivityViolated)
	}
	return run.out, nil
}

func tooltipOptions(def entity.ScenarioTooltip) tooltip.Options {
	opts := tooltip.DefaultOptions()
	opts.Text = def.Text
	opts.Side = def.Side()
	if def.ShowDelayMs != nil {
		opts.ShowDelay = time.Duration(*def.ShowDelayMs) * time.Millisecond
	}
	if def.HideDelayMs != nil {
		opts.HideDelay = time.Duration(*def.HideDelayMs) * time.Millisecond
	}
	if def.Offset != nil {
		opts.Offset = *def.Offset
	}
	return opts
}

// simRun is the shared state of one replay.
type simRun struct {
	clock    port.VirtualClock
	host     port.OverlayHost
	out      *SimulateOutput
	attached int
	live     int
}

func (r *simRun) add(tip string, kind TimelineKind, what string, p *entity.Placement) {
	r.out.Timeline = append(r.out.Timeline, TimelineEntry{
		AtMs:      r.clock.Now().Milliseconds(),
		Tooltip:   tip,
		Kind:      kind,
		What:      what,
		Placement: p,
	})
}

// simOverlay is one tooltip's view of the run's overlay host. It
// reports the scenario's bubble size and records every call.
type simOverlay struct {
	run     *simRun
	tooltip string
	size    entity.Size
	pos     map[port.OverlayHandle]entity.Placement
}

func (o *simOverlay) Create(text string) port.OverlayHandle {
	h := o.run.host.Create(text)
	o.run.live++
	o.run.add(o.tooltip, TimelineOverlay, "create", nil)
	return h
}

func (o *simOverlay) Measure(h port.OverlayHandle) entity.Rect {
	r := o.run.host.Measure(h)
	r.Width, r.Height = o.size.Width, o.size.Height
	return r
}

func (o *simOverlay) SetPosition(h port.OverlayHandle, top, left float64) {
	o.run.host.SetPosition(h, top, left)
	o.placement(h, func(p *entity.Placement) { p.Top, p.Left = top, left })
}

func (o *simOverlay) MarkSide(h port.OverlayHandle, side entity.Side) {
	if marker, ok := o.run.host.(port.SideMarker); ok {
		marker.MarkSide(h, side)
	}
	o.placement(h, func(p *entity.Placement) { p.Side = side })
	p := o.pos[h]
	o.run.add(o.tooltip, TimelineOverlay, "position", &p)
}

func (o *simOverlay) Attach(h port.OverlayHandle) {
	o.run.host.Attach(h)
	o.run.attached++
	o.run.out.Summary.Shown++
	o.run.out.Summary.MaxAttached = max(o.run.out.Summary.MaxAttached, o.run.attached)
	o.run.add(o.tooltip, TimelineOverlay, "attach", nil)
}

func (o *simOverlay) Detach(h port.OverlayHandle) {
	o.run.host.Detach(h)
	o.run.attached--
	o.run.out.Summary.Hidden++
	o.run.add(o.tooltip, TimelineOverlay, "detach", nil)
}

func (o *simOverlay) Destroy(h port.OverlayHandle) {
	o.run.host.Destroy(h)
	o.run.live--
	delete(o.pos, h)
	o.run.add(o.tooltip, TimelineOverlay, "destroy", nil)
}

func (o *simOverlay) placement(h port.OverlayHandle, update func(*entity.Placement)) {
	if o.pos == nil {
		o.pos = make(map[port.OverlayHandle]entity.Placement)
	}
	p := o.pos[h]
	update(&p)
	o.pos[h] = p
}

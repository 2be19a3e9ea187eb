package tooltip

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtip/internal/application/port"
	"github.com/bnema/dumbtip/internal/domain/entity"
	"github.com/bnema/dumbtip/internal/infrastructure/overlay"
	"github.com/bnema/dumbtip/internal/ui/mainloop"
)

type harness struct {
	registry  *Registry
	scheduler *mainloop.VirtualScheduler
	recorder  *overlay.Recorder
	ids       IDGenerator
	host      entity.Rect
	view      entity.Viewport
}

func newHarness() *harness {
	h := &harness{
		registry:  NewRegistry(context.Background()),
		scheduler: mainloop.NewVirtualScheduler(),
		recorder:  overlay.NewRecorder(80, 30),
		ids:       SequentialIDs("tip"),
		host:      entity.Rect{Top: 100, Left: 100, Width: 50, Height: 20},
		view:      entity.Viewport{Width: 1000, Height: 800},
	}
	h.recorder.Now = h.scheduler.Now
	return h
}

func (h *harness) newTooltip(text string) *Tooltip {
	opts := DefaultOptions()
	opts.Text = text
	return h.newTooltipWith(opts)
}

func (h *harness) newTooltipWith(opts Options) *Tooltip {
	return New(context.Background(), opts, Deps{
		Registry:  h.registry,
		Scheduler: h.scheduler,
		Overlay:   h.recorder,
		Host:      port.HostGeometryFunc(func() entity.Rect { return h.host }),
		Viewport:  port.ViewportFunc(func() entity.Viewport { return h.view }),
		NewID:     h.ids,
	})
}

func TestTooltip_ShowsAfterDelay(t *testing.T) {
	h := newHarness()
	tip := h.newTooltip("Save")

	tip.PointerEnter()
	assert.Equal(t, PhasePendingShow, tip.Phase())
	active, ok := h.registry.Active()
	require.True(t, ok)
	assert.Equal(t, tip.ID(), active)

	h.scheduler.Advance(DefaultShowDelay - time.Millisecond)
	assert.False(t, tip.HasOverlay())

	h.scheduler.Advance(time.Millisecond)
	require.True(t, tip.HasOverlay())
	assert.Equal(t, PhaseVisible, tip.Phase())

	ops := make([]overlay.Op, 0)
	for _, c := range h.recorder.Calls() {
		ops = append(ops, c.Op)
	}
	assert.Equal(t, []overlay.Op{
		overlay.OpCreate, overlay.OpAttach, overlay.OpMeasure, overlay.OpSetPosition, overlay.OpMarkSide,
	}, ops)

	calls := h.recorder.Calls()
	assert.Equal(t, "Save", calls[0].Text)
	assert.Equal(t, 126.0, calls[3].Top)
	assert.Equal(t, 85.0, calls[3].Left)
	assert.Equal(t, entity.SideBottom, calls[4].Side)
}

func TestTooltip_LeaveBeforeShowNeverCreatesOverlay(t *testing.T) {
	h := newHarness()
	tip := h.newTooltip("Save")

	tip.PointerEnter()
	h.scheduler.Advance(100 * time.Millisecond)
	tip.PointerLeave()

	assert.Equal(t, PhaseIdle, tip.Phase())
	assert.Zero(t, h.scheduler.Pending())

	h.scheduler.Advance(10 * time.Second)
	assert.Zero(t, h.recorder.CountOp(overlay.OpCreate))
	_, ok := h.registry.Active()
	assert.False(t, ok)
}

func TestTooltip_ReenterDuringHideDelayKeepsSameOverlay(t *testing.T) {
	h := newHarness()
	tip := h.newTooltip("Save")

	tip.PointerEnter()
	h.scheduler.Advance(DefaultShowDelay)
	require.True(t, tip.HasOverlay())
	created := h.recorder.Calls()[0].Handle

	tip.PointerLeave()
	assert.Equal(t, PhasePendingHide, tip.Phase())
	h.scheduler.Advance(DefaultHideDelay / 2)

	tip.PointerEnter()
	assert.Equal(t, PhaseVisible, tip.Phase())
	assert.Zero(t, h.scheduler.Pending(), "re-entering must cancel the hide timer without arming a show timer")

	h.scheduler.Advance(time.Minute)
	assert.Equal(t, 1, h.recorder.CountOp(overlay.OpCreate))
	assert.Zero(t, h.recorder.CountOp(overlay.OpDestroy))
	assert.Equal(t, created, h.recorder.Calls()[0].Handle)
	assert.True(t, tip.HasOverlay())
}

func TestTooltip_HidesAfterHideDelayAndReleases(t *testing.T) {
	h := newHarness()
	opts := DefaultOptions()
	opts.HideDelay = 100 * time.Millisecond
	tip := h.newTooltipWith(opts)

	tip.PointerEnter()
	h.scheduler.Advance(DefaultShowDelay)
	tip.PointerLeave()

	h.scheduler.Advance(99 * time.Millisecond)
	assert.True(t, tip.HasOverlay())

	h.scheduler.Advance(time.Millisecond)
	assert.False(t, tip.HasOverlay())
	assert.Equal(t, PhaseIdle, tip.Phase())
	assert.Equal(t, 1, h.recorder.CountOp(overlay.OpDetach))
	assert.Equal(t, 1, h.recorder.CountOp(overlay.OpDestroy))
	assert.Zero(t, h.recorder.Live())
	_, ok := h.registry.Active()
	assert.False(t, ok)
}

func TestTooltip_ClaimHidesPreviousImmediately(t *testing.T) {
	h := newHarness()
	a := h.newTooltip("A")
	b := h.newTooltip("B")

	a.PointerEnter()
	h.scheduler.Advance(DefaultShowDelay)
	require.True(t, a.HasOverlay())
	a.PointerLeave()

	b.PointerEnter()
	assert.False(t, a.HasOverlay(), "previous tooltip is hidden as part of the claim")
	assert.Equal(t, PhaseIdle, a.Phase())
	active, _ := h.registry.Active()
	assert.Equal(t, b.ID(), active)
	assert.Equal(t, 1, h.scheduler.Pending(), "only b's show timer remains")

	h.scheduler.Advance(DefaultShowDelay)
	assert.True(t, b.HasOverlay())
	assert.Equal(t, 1, h.recorder.MaxAttached())
}

func TestTooltip_ClaimCancelsPendingShowOfPrevious(t *testing.T) {
	h := newHarness()
	a := h.newTooltip("A")
	b := h.newTooltip("B")

	a.PointerEnter()
	h.scheduler.Advance(100 * time.Millisecond)
	b.PointerEnter()

	h.scheduler.Advance(time.Minute)
	assert.False(t, a.HasOverlay())
	assert.True(t, b.HasOverlay())
	assert.Equal(t, 1, h.recorder.CountOp(overlay.OpCreate))
}

func TestTooltip_StaleHideOfPreviousDoesNotReleaseNewHolder(t *testing.T) {
	h := newHarness()
	a := h.newTooltip("A")
	b := h.newTooltip("B")

	a.PointerEnter()
	h.scheduler.Advance(DefaultShowDelay)
	a.PointerLeave()
	b.PointerEnter()
	b.PointerLeave()
	b.PointerEnter()

	h.scheduler.Advance(DefaultHideDelay)
	active, ok := h.registry.Active()
	require.True(t, ok)
	assert.Equal(t, b.ID(), active)
	assert.True(t, b.HasOverlay())
}

func TestTooltip_TeardownIsIdempotent(t *testing.T) {
	h := newHarness()
	tip := h.newTooltip("Save")

	tip.PointerEnter()
	h.scheduler.Advance(DefaultShowDelay)
	tip.PointerLeave()

	assert.NotPanics(t, func() {
		tip.Teardown()
		tip.Teardown()
	})

	assert.False(t, tip.HasOverlay())
	assert.Zero(t, h.recorder.AttachedCount())
	assert.Zero(t, h.scheduler.Pending())
	assert.Zero(t, h.registry.Len())
	_, ok := h.registry.Active()
	assert.False(t, ok)
	assert.Equal(t, 1, h.recorder.CountOp(overlay.OpDestroy))
}

func TestTooltip_TeardownWhileIdle(t *testing.T) {
	h := newHarness()
	tip := h.newTooltip("Save")

	tip.Teardown()
	tip.Teardown()

	assert.Empty(t, h.recorder.Calls())
	assert.Equal(t, PhaseIdle, tip.Phase())
}

func TestTooltip_IgnoresEventsAfterTeardown(t *testing.T) {
	h := newHarness()
	tip := h.newTooltip("Save")

	tip.PointerEnter()
	tip.Teardown()
	tip.PointerEnter()
	tip.PointerLeave()
	h.scheduler.Advance(time.Minute)

	assert.Zero(t, h.recorder.CountOp(overlay.OpCreate))
	_, ok := h.registry.Active()
	assert.False(t, ok)
}

func TestTooltip_PlacesAgainstHostRectAtShowTime(t *testing.T) {
	h := newHarness()
	tip := h.newTooltip("Save")

	tip.PointerEnter()
	h.host = h.host.Translate(0, 650)
	h.view.ScrollTop = 40
	h.scheduler.Advance(DefaultShowDelay)

	placed, ok := tip.Placement()
	require.True(t, ok)
	// only 30px below the moved host, so it flips above: 750 - 30 - 6 + 40 scroll.
	assert.Equal(t, entity.SideTop, placed.Side)
	assert.Equal(t, 754.0, placed.Top)
}

func TestTooltip_ReportsTransitions(t *testing.T) {
	h := newHarness()
	var seen []Phase
	opts := DefaultOptions()
	tip := New(context.Background(), opts, Deps{
		Registry:     h.registry,
		Scheduler:    h.scheduler,
		Overlay:      h.recorder,
		NewID:        h.ids,
		OnTransition: func(tr Transition) { seen = append(seen, tr.To) },
	})

	tip.PointerEnter()
	h.scheduler.Advance(DefaultShowDelay)
	tip.PointerLeave()
	h.scheduler.Advance(DefaultHideDelay)

	assert.Equal(t, []Phase{PhasePendingShow, PhaseVisible, PhasePendingHide, PhaseIdle}, seen)
}

func TestTooltip_NormalizesOptions(t *testing.T) {
	h := newHarness()
	tip := h.newTooltipWith(Options{Side: "sideways", ShowDelay: -time.Second, HideDelay: -1, Offset: -3})

	got := tip.Options()
	assert.Equal(t, entity.DefaultSide, got.Side)
	assert.Zero(t, got.ShowDelay)
	assert.Zero(t, got.HideDelay)
	assert.Zero(t, got.Offset)
}

func TestNewPanicsWithoutRequiredDeps(t *testing.T) {
	assert.Panics(t, func() {
		New(context.Background(), DefaultOptions(), Deps{})
	})
}

// TestTooltip_RandomEventsKeepSingleVisible drives several tooltips with a
// seeded random event stream and checks exclusivity after every step.
func TestTooltip_RandomEventsKeepSingleVisible(t *testing.T) {
	h := newHarness()
	rng := rand.New(rand.NewSource(42))

	tips := make([]*Tooltip, 4)
	for i := range tips {
		opts := DefaultOptions()
		opts.HideDelay = time.Duration(100+rng.Intn(3000)) * time.Millisecond
		tips[i] = h.newTooltipWith(opts)
	}

	for step := 0; step < 2000; step++ {
		tip := tips[rng.Intn(len(tips))]
		switch rng.Intn(5) {
		case 0, 1:
			tip.PointerEnter()
		case 2, 3:
			tip.PointerLeave()
		case 4:
			h.scheduler.Advance(time.Duration(rng.Intn(1000)) * time.Millisecond)
		}

		shown := 0
		for _, tp := range tips {
			if tp.Phase() == PhaseVisible || tp.Phase() == PhasePendingHide {
				shown++
				active, _ := h.registry.Active()
				require.Equal(t, tp.ID(), active, "step %d: visible tooltip must hold activation", step)
			}
			require.Equal(t, tp.HasOverlay(), tp.Phase() == PhaseVisible || tp.Phase() == PhasePendingHide,
				"step %d: overlay ownership follows phase", step)
		}
		require.LessOrEqual(t, shown, 1, "step %d", step)
		require.LessOrEqual(t, h.recorder.AttachedCount(), 1, "step %d", step)
	}

	for _, tp := range tips {
		tp.Teardown()
	}
	assert.Zero(t, h.recorder.Live())
	assert.Zero(t, h.scheduler.Pending())
}

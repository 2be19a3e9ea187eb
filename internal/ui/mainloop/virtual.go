package mainloop

import (
	"time"

	"github.com/bnema/dumbtip/internal/application/port"
)

type virtualTask struct {
	handle port.TimerHandle
	at     time.Duration
	fn     func()
}

// VirtualScheduler is a manual clock. Callbacks run inside Advance, in
// due-time order, ties broken by scheduling order.
type VirtualScheduler struct {
	now   time.Duration
	next  port.TimerHandle
	tasks []virtualTask
}

// NewVirtualScheduler creates a scheduler whose clock starts at zero.
func NewVirtualScheduler() *VirtualScheduler {
	return &VirtualScheduler{}
}

// Schedule implements port.Scheduler.
func (s *VirtualScheduler) Schedule(delay time.Duration, fn func()) port.TimerHandle {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	s.next++
	s.tasks = append(s.tasks, virtualTask{handle: s.next, at: s.now + delay, fn: fn})
	return s.next
}

// Cancel implements port.Scheduler.
func (s *VirtualScheduler) Cancel(h port.TimerHandle) {
	for i, task := range s.tasks {
		if task.handle == h {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Now returns the virtual time elapsed since creation.
func (s *VirtualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of armed timers.
func (s *VirtualScheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves the clock forward by d, running every callback that
// becomes due. Callbacks may schedule or cancel other timers.
func (s *VirtualScheduler) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.AdvanceTo(s.now + d)
}

// AdvanceTo moves the clock to t. Moving backwards is a no-op.
func (s *VirtualScheduler) AdvanceTo(t time.Duration) {
	for {
		i := s.earliestDue(t)
		if i < 0 {
			break
		}
		task := s.tasks[i]
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		s.now = task.at
		task.fn()
	}
	if t > s.now {
		s.now = t
	}
}

// earliestDue returns the index of the next task due at or before t.
// Handles grow monotonically, so the lower handle wins a tie.
func (s *VirtualScheduler) earliestDue(t time.Duration) int {
	best := -1
	for i, task := range s.tasks {
		if task.at > t {
			continue
		}
		if best < 0 || task.at < s.tasks[best].at ||
			(task.at == s.tasks[best].at && task.handle < s.tasks[best].handle) {
			best = i
		}
	}
	return best
}

var _ port.VirtualClock = (*VirtualScheduler)(nil)

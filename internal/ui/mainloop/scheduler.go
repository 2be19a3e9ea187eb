// Package mainloop provides schedulers that deliver timer callbacks on
// a single event loop.
package mainloop

import (
	"sync"
	"time"

	"github.com/bnema/dumbtip/internal/application/port"
)

// TimerScheduler arms wall-clock timers and hands expired callbacks to
// post, which must run them on the event loop. A callback cancelled
// after its timer fired but before post ran it is dropped.
type TimerScheduler struct {
	mu        sync.Mutex
	post      func(func())
	next      port.TimerHandle
	timers    map[port.TimerHandle]*time.Timer
	destroyed bool
}

// NewTimerScheduler creates a scheduler that delivers through post.
func NewTimerScheduler(post func(func())) *TimerScheduler {
	if post == nil {
		panic("mainloop.NewTimerScheduler: post function cannot be nil")
	}

	return &TimerScheduler{
		post:   post,
		timers: make(map[port.TimerHandle]*time.Timer),
	}
}

// Schedule implements port.Scheduler.
func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) port.TimerHandle {
	if fn == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return 0
	}

	s.next++
	h := s.next
	s.timers[h] = time.AfterFunc(delay, func() {
		s.post(func() {
			s.mu.Lock()
			_, live := s.timers[h]
			delete(s.timers, h)
			s.mu.Unlock()

			if live {
				fn()
			}
		})
	})
	return h
}

// Cancel implements port.Scheduler.
func (s *TimerScheduler) Cancel(h port.TimerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[h]; ok {
		t.Stop()
		delete(s.timers, h)
	}
}

// Pending returns the number of armed timers.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Destroy stops every timer and refuses new ones.
func (s *TimerScheduler) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.destroyed = true
	for h, t := range s.timers {
		t.Stop()
		delete(s.timers, h)
	}
}

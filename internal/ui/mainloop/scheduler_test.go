package mainloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanLoop collects posted callbacks so the test goroutine acts as the loop.
func chanLoop() (chan func(), func(func())) {
	ch := make(chan func(), 16)
	return ch, func(fn func()) { ch <- fn }
}

func TestTimerSchedulerDeliversThroughPost(t *testing.T) {
	ch, post := chanLoop()
	s := NewTimerScheduler(post)

	ran := false
	h := s.Schedule(time.Millisecond, func() { ran = true })
	require.NotZero(t, h)

	select {
	case fn := <-ch:
		assert.False(t, ran, "callback must not run before the loop executes it")
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timer never posted")
	}
	assert.True(t, ran)
	assert.Zero(t, s.Pending())
}

func TestTimerSchedulerDropsCallbackCancelledAfterFiring(t *testing.T) {
	ch, post := chanLoop()
	s := NewTimerScheduler(post)

	ran := false
	h := s.Schedule(time.Millisecond, func() { ran = true })

	var posted func()
	select {
	case posted = <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never posted")
	}

	s.Cancel(h)
	posted()
	assert.False(t, ran)
}

func TestTimerSchedulerCancelBeforeFiring(t *testing.T) {
	ch, post := chanLoop()
	s := NewTimerScheduler(post)

	h := s.Schedule(time.Hour, func() {})
	s.Cancel(h)
	s.Cancel(h)
	s.Cancel(0)

	assert.Zero(t, s.Pending())
	assert.Empty(t, ch)
}

func TestTimerSchedulerDestroy(t *testing.T) {
	_, post := chanLoop()
	s := NewTimerScheduler(post)

	s.Schedule(time.Hour, func() {})
	s.Destroy()

	assert.Zero(t, s.Pending())
	assert.Zero(t, s.Schedule(time.Millisecond, func() {}))
}

func TestNewTimerSchedulerPanicsOnNilPost(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewTimerScheduler to panic when post is nil")
		}
	}()

	_ = NewTimerScheduler(nil)
}

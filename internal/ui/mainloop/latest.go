package mainloop

import "sync"

// Latest hands the newest value of a burst to deliver on the event loop.
// A value offered while a delivery is queued replaces the queued one and
// is counted as merged. Offer is safe from any goroutine.
type Latest[T any] struct {
	mu      sync.Mutex
	post    func(func())
	deliver func(v T, merged int)

	value     T
	merged    int
	queued    bool
	destroyed bool
}

// NewLatest creates a holder that posts deliveries through post.
func NewLatest[T any](post func(func()), deliver func(v T, merged int)) *Latest[T] {
	if post == nil || deliver == nil {
		panic("mainloop.NewLatest: post and deliver are required")
	}
	return &Latest[T]{post: post, deliver: deliver}
}

// Offer records v as the newest value and queues a delivery unless one
// is already queued.
func (l *Latest[T]) Offer(v T) {
	l.mu.Lock()
	if l.destroyed {
		l.mu.Unlock()
		return
	}
	l.value = v
	if l.queued {
		l.merged++
		l.mu.Unlock()
		return
	}
	l.queued = true
	l.mu.Unlock()

	l.post(l.flush)
}

// Queued reports whether a delivery is waiting for the loop.
func (l *Latest[T]) Queued() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queued
}

func (l *Latest[T]) flush() {
	l.mu.Lock()
	if l.destroyed || !l.queued {
		l.mu.Unlock()
		return
	}
	v, merged := l.value, l.merged
	var zero T
	l.value, l.merged, l.queued = zero, 0, false
	l.mu.Unlock()

	l.deliver(v, merged)
}

// Destroy drops the queued value and ignores later offers.
func (l *Latest[T]) Destroy() {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	l.destroyed = true
	l.value, l.merged, l.queued = zero, 0, false
}

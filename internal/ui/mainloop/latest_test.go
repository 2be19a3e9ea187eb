package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queueLoop() (*[]func(), func(func())) {
	queue := make([]func(), 0, 8)
	return &queue, func(fn func()) { queue = append(queue, fn) }
}

type delivery struct {
	value  string
	merged int
}

func recordDeliveries() (*[]delivery, func(string, int)) {
	var got []delivery
	return &got, func(v string, merged int) { got = append(got, delivery{v, merged}) }
}

func TestLatestDeliversNewestOfBurst(t *testing.T) {
	queue, post := queueLoop()
	got, deliver := recordDeliveries()
	l := NewLatest(post, deliver)

	for _, v := range []string{"a", "b", "c"} {
		l.Offer(v)
	}
	require.Len(t, *queue, 1)
	assert.True(t, l.Queued())

	(*queue)[0]()
	assert.Equal(t, []delivery{{"c", 2}}, *got)
	assert.False(t, l.Queued())

	l.Offer("d")
	require.Len(t, *queue, 2, "a new burst posts again once the previous one was delivered")
	(*queue)[1]()
	assert.Equal(t, delivery{"d", 0}, (*got)[1])
}

func TestLatestDropsValueAfterDestroy(t *testing.T) {
	queue, post := queueLoop()
	got, deliver := recordDeliveries()
	l := NewLatest(post, deliver)

	l.Offer("a")
	l.Destroy()
	(*queue)[0]()
	assert.Empty(t, *got)

	l.Offer("b")
	assert.Len(t, *queue, 1)
	assert.False(t, l.Queued())
}

func TestNewLatestPanicsWithoutCallbacks(t *testing.T) {
	_, post := queueLoop()
	assert.Panics(t, func() { NewLatest[int](nil, func(int, int) {}) })
	assert.Panics(t, func() { NewLatest[int](post, nil) })
}

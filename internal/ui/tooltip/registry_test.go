package tooltip

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type hideCounter struct{ hides int }

func (h *hideCounter) HideNow() { h.hides++ }

func TestRegistry_ClaimHidesDifferentPrevious(t *testing.T) {
	r := NewRegistry(context.Background())
	a, b := &hideCounter{}, &hideCounter{}
	r.Register("a", a)
	r.Register("b", b)

	prev, had := r.Claim("a")
	assert.False(t, had)
	assert.Empty(t, prev)

	prev, had = r.Claim("a")
	assert.True(t, had)
	assert.Equal(t, "a", prev)
	assert.Zero(t, a.hides, "re-claiming your own activation hides nothing")

	prev, _ = r.Claim("b")
	assert.Equal(t, "a", prev)
	assert.Equal(t, 1, a.hides)
	assert.Zero(t, b.hides)

	active, ok := r.Active()
	assert.True(t, ok)
	assert.Equal(t, "b", active)
}

func TestRegistry_ReleaseOnlyByHolder(t *testing.T) {
	r := NewRegistry(context.Background())
	r.Claim("a")
	r.Claim("b")

	assert.False(t, r.Release("a"), "stale release is a no-op")
	active, _ := r.Active()
	assert.Equal(t, "b", active)

	assert.True(t, r.Release("b"))
	assert.False(t, r.Release("b"))
	_, ok := r.Active()
	assert.False(t, ok)
}

func TestRegistry_ClaimWithUnregisteredPrevious(t *testing.T) {
	r := NewRegistry(context.Background())
	r.Claim("gone")

	assert.NotPanics(t, func() { r.Claim("next") })
	active, _ := r.Active()
	assert.Equal(t, "next", active)
}

func TestRegistry_IndependentInstances(t *testing.T) {
	r1 := NewRegistry(context.Background())
	r2 := NewRegistry(context.Background())
	h := &hideCounter{}
	r1.Register("a", h)

	r1.Claim("a")
	r2.Claim("b")

	assert.Zero(t, h.hides)
	a1, _ := r1.Active()
	a2, _ := r2.Active()
	assert.Equal(t, "a", a1)
	assert.Equal(t, "b", a2)
}

func TestRegistry_RegisterIgnoresEmpty(t *testing.T) {
	r := NewRegistry(context.Background())
	r.Register("", &hideCounter{})
	r.Register("x", nil)

	assert.Zero(t, r.Len())
}

package querycache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_PutGet(t *testing.T) {
	c := New()
	c.Put(GroupCards, []int{1, 2, 3})

	got, ok := c.Get(GroupCards)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestCache_GetMissing(t *testing.T) {
	c := New()
	_, ok := c.Get(GroupMine)
	assert.False(t, ok)
	assert.False(t, c.Stale(GroupMine))
}

func TestCache_InvalidateMarksStale(t *testing.T) {
	c := New()
	c.Put(GroupCards, "cards")
	c.Invalidate(GroupCards, GroupPast)

	_, ok := c.Get(GroupCards)
	assert.False(t, ok, "stale entries must not be served")
	assert.True(t, c.Stale(GroupCards))
	// Never-stored groups are recorded stale too, so late consumers refetch.
	assert.True(t, c.Stale(GroupPast))
}

func TestCache_PutClearsStale(t *testing.T) {
	c := New()
	c.Put(GroupCards, "old")
	c.Invalidate(GroupCards)
	c.Put(GroupCards, "fresh")

	got, ok := c.Get(GroupCards)
	assert.True(t, ok)
	assert.Equal(t, "fresh", got)
	assert.False(t, c.Stale(GroupCards))
}

func TestCache_InvalidateHook(t *testing.T) {
	c := New()
	var calls [][]string
	c.SetOnInvalidate(func(groups []string) {
		calls = append(calls, groups)
	})

	c.Invalidate(GroupCards, GroupDetail(7))
	c.Invalidate() // no groups, no hook

	assert.Len(t, calls, 1)
	assert.Equal(t, []string{GroupCards, "practices:detail:7"}, calls[0])
}

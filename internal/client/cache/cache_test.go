package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userdesk-dev/userdesk/internal/client/models"
)

func snapshot(ids ...int) models.PagedUsers {
	items := make([]models.User, len(ids))
	for i, id := range ids {
		items[i] = models.User{ID: id, Name: "u", Email: "u@example.com"}
	}
	return models.PagedUsers{Items: items, Total: len(ids), TotalPages: 1}
}

func TestReadAfterWrite(t *testing.T) {
	c := New(2 * time.Minute)
	key := Key{Page: 1, PerPage: 6}

	_, ok, _ := c.Read(key)
	require.False(t, ok)

	want := snapshot(1, 2, 3)
	c.Write(key, want)

	got, ok, fresh := c.Read(key)
	require.True(t, ok)
	assert.True(t, fresh)
	assert.Equal(t, want, got)

	// Idempotence: reading twice with no intervening write returns
	// identical snapshots.
	again, ok, _ := c.Read(key)
	require.True(t, ok)
	assert.Equal(t, got, again)
}

func TestReadReturnsACopy(t *testing.T) {
	c := New(2 * time.Minute)
	key := Key{Page: 1, PerPage: 6}
	c.Write(key, snapshot(1, 2))

	got, _, _ := c.Read(key)
	got.Items[0].Name = "mutated"

	clean, _, _ := c.Read(key)
	assert.Equal(t, "u", clean.Items[0].Name)
}

func TestInvalidate_OnlyAffectsItsKey(t *testing.T) {
	c := New(2 * time.Minute)
	k1 := Key{Page: 1, PerPage: 6}
	k2 := Key{Page: 2, PerPage: 6}
	c.Write(k1, snapshot(1))
	c.Write(k2, snapshot(2))

	c.Invalidate(k1)

	_, ok, _ := c.Read(k1)
	assert.False(t, ok)
	_, ok, _ = c.Read(k2)
	assert.True(t, ok)
}

func TestFreshnessWindow(t *testing.T) {
	c := New(2 * time.Minute)
	key := Key{Page: 1, PerPage: 6}

	now := time.Now()
	c.now = func() time.Time { return now }
	c.Write(key, snapshot(1))

	_, ok, fresh := c.Read(key)
	require.True(t, ok)
	assert.True(t, fresh)

	// Just before the window closes the snapshot is still fresh.
	c.now = func() time.Time { return now.Add(2*time.Minute - time.Second) }
	_, _, fresh = c.Read(key)
	assert.True(t, fresh)

	// After the window it is served stale, not dropped.
	c.now = func() time.Time { return now.Add(2*time.Minute + time.Second) }
	got, ok, fresh := c.Read(key)
	require.True(t, ok)
	assert.False(t, fresh)
	assert.Len(t, got.Items, 1)
}

func TestCompareAndWrite_SupersededFetchIsDropped(t *testing.T) {
	c := New(2 * time.Minute)
	key := Key{Page: 1, PerPage: 6}
	c.Write(key, snapshot(1, 2, 3))

	// A fetch captures the generation, then a mutation bumps it and
	// rewrites the page optimistically.
	gen := c.Generation(key)
	c.Bump(key)
	optimistic := snapshot(1, 2)
	c.Write(key, optimistic)

	// The late fetch response must not clobber the optimistic write.
	ok := c.CompareAndWrite(key, gen, snapshot(1, 2, 3))
	assert.False(t, ok)

	got, _, _ := c.Read(key)
	assert.Equal(t, optimistic, got)
}

func TestCompareAndWrite_CurrentGenerationWins(t *testing.T) {
	c := New(2 * time.Minute)
	key := Key{Page: 1, PerPage: 6}

	gen := c.Generation(key)
	want := snapshot(7)
	require.True(t, c.CompareAndWrite(key, gen, want))

	got, ok, _ := c.Read(key)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestInvalidate_KeepsGeneration(t *testing.T) {
	c := New(2 * time.Minute)
	key := Key{Page: 1, PerPage: 6}
	c.Write(key, snapshot(1))

	gen := c.Generation(key)
	c.Bump(key)
	c.Invalidate(key)

	// The fetch that started before the bump is still superseded.
	assert.False(t, c.CompareAndWrite(key, gen, snapshot(9)))
}

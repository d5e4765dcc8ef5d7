package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(start time.Time) (*Cache, *time.Time) {
	c := New()
	current := start
	c.now = func() time.Time { return current }
	return c, &current
}

func TestGetSet(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))

	_, ok := c.Get("weapons-all")
	assert.False(t, ok)

	c.Set("weapons-all", []string{"fatebringer"}, time.Minute)

	v, ok := c.Get("weapons-all")
	require.True(t, ok)
	assert.Equal(t, []string{"fatebringer"}, v)
}

func TestExpiry(t *testing.T) {
	start := time.Unix(1000, 0)
	c, clock := newTestCache(start)

	c.Set("k", "v", time.Minute)

	// Still live just inside the window.
	*clock = start.Add(59 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	// Past the TTL the entry reports a miss and is removed.
	*clock = start.Add(61 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestClear_SubstringPattern(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))

	c.Set("weapons-all-all-all", 1, time.Minute)
	c.Set("weapons-Primary-all-true", 2, time.Minute)
	c.Set("mods-all-all-all", 3, time.Minute)

	c.Clear("weapons")

	_, ok := c.Get("weapons-all-all-all")
	assert.False(t, ok)
	_, ok = c.Get("weapons-Primary-all-true")
	assert.False(t, ok)
	_, ok = c.Get("mods-all-all-all")
	assert.True(t, ok)
}

func TestClear_All(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Clear("")
	assert.Zero(t, c.Len())
}

func TestSet_OverwritesExpiry(t *testing.T) {
	start := time.Unix(1000, 0)
	c, clock := newTestCache(start)

	c.Set("k", "old", time.Minute)
	*clock = start.Add(50 * time.Second)
	c.Set("k", "new", time.Minute)

	*clock = start.Add(100 * time.Second)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestGetOr(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))

	calls := 0
	fetch := func() ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}

	v, err := GetOr(c, "list", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v)

	// Second read is served from cache.
	_, err = GetOr(c, "list", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestGetOr_ErrorsAreNotCached(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))

	boom := errors.New("boom")
	_, err := GetOr(c, "k", time.Minute, func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, c.Len())
}

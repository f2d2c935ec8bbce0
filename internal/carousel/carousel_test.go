package carousel

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eaglesounds.in/internal/models"
)

func testSlides(n int) []models.Slide {
	slides := make([]models.Slide, n)
	for i := range slides {
		slides[i] = models.Slide{Index: i, Title: string(rune('A' + i))}
	}
	return slides
}

// manual returns a controller whose transitions only end via EndTransition
func manual(t *testing.T, n int) *Controller {
	t.Helper()
	c, err := New(testSlides(n), Options{
		AutoPlayInterval:   time.Hour,
		TransitionDuration: time.Hour,
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewRequiresSlides(t *testing.T) {
	_, err := New(nil, Options{})
	assert.ErrorIs(t, err, ErrNoSlides)
}

func TestAdvanceForwardCycles(t *testing.T) {
	for n := 1; n <= 6; n++ {
		c := manual(t, n)
		start := c.State().ActiveIndex
		for i := 0; i < n; i++ {
			c.Advance(Forward)
			assert.Less(t, c.State().ActiveIndex, n)
			c.EndTransition()
		}
		assert.Equal(t, start, c.State().ActiveIndex, "n=%d", n)
	}
}

func TestAdvanceBackwardWraps(t *testing.T) {
	c := manual(t, 4)

	require.True(t, c.Advance(Backward))
	assert.Equal(t, 3, c.State().ActiveIndex)
	assert.Equal(t, "D", c.State().Slide.Title)
}

func TestAdvanceIgnoredDuringTransition(t *testing.T) {
	c := manual(t, 4)

	require.True(t, c.Advance(Forward))
	assert.True(t, c.State().Transitioning)

	assert.False(t, c.Advance(Forward))
	assert.False(t, c.Advance(Backward))
	assert.Equal(t, 1, c.State().ActiveIndex)

	c.EndTransition()
	assert.False(t, c.State().Transitioning)
	assert.True(t, c.Advance(Forward))
	assert.Equal(t, 2, c.State().ActiveIndex)
}

func TestJumpToIsIdempotent(t *testing.T) {
	var mu sync.Mutex
	var changes []State
	c, err := New(testSlides(5), Options{
		AutoPlayInterval:   time.Hour,
		TransitionDuration: time.Hour,
		OnChange: func(s State) {
			mu.Lock()
			changes = append(changes, s)
			mu.Unlock()
		},
	})
	require.NoError(t, err)
	defer c.Close()

	moved, err := c.JumpTo(3)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 3, c.State().ActiveIndex)

	c.EndTransition()

	moved, err = c.JumpTo(3)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.False(t, c.State().Transitioning, "no transition re-triggered")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, changes, 2)
	assert.True(t, changes[0].Transitioning)
	assert.False(t, changes[1].Transitioning)
}

func TestVersionIncreasesWithEveryChange(t *testing.T) {
	var (
		mu       sync.Mutex
		versions []uint64
	)
	c, err := New(testSlides(3), Options{
		AutoPlayInterval:   time.Hour,
		TransitionDuration: time.Hour,
		OnChange: func(s State) {
			mu.Lock()
			versions = append(versions, s.Version)
			mu.Unlock()
		},
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	initial := c.State().Version
	require.True(t, c.Advance(Forward))
	c.EndTransition()
	_, err = c.JumpTo(0)
	require.NoError(t, err)
	c.EndTransition()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, versions, 4, "two moves and two transition ends")
	prev := initial
	for _, v := range versions {
		assert.Greater(t, v, prev)
		prev = v
	}
	assert.Equal(t, prev, c.State().Version)
}

func TestJumpToOutOfRange(t *testing.T) {
	c := manual(t, 3)

	_, err := c.JumpTo(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = c.JumpTo(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTransitionEndsAfterDuration(t *testing.T) {
	c, err := New(testSlides(3), Options{
		AutoPlayInterval:   time.Hour,
		TransitionDuration: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	defer c.Close()

	require.True(t, c.Advance(Forward))
	require.Eventually(t, func() bool {
		return !c.State().Transitioning
	}, time.Second, 5*time.Millisecond)
}

func TestZeroTransitionNeverLocks(t *testing.T) {
	c, err := New(testSlides(3), Options{AutoPlayInterval: time.Hour})
	require.NoError(t, err)
	defer c.Close()

	assert.True(t, c.Advance(Forward))
	assert.True(t, c.Advance(Forward))
	assert.Equal(t, 2, c.State().ActiveIndex)
}

func TestAutoPlayAdvances(t *testing.T) {
	c, err := New(testSlides(3), Options{
		AutoPlayInterval:   15 * time.Millisecond,
		TransitionDuration: time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return c.State().ActiveIndex == 2
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.False(t, c.Advance(Forward), "closed controller ignores navigation")
}

func TestManualNavigationDelaysAutoPlay(t *testing.T) {
	c, err := New(testSlides(4), Options{
		AutoPlayInterval:   300 * time.Millisecond,
		TransitionDuration: time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	time.Sleep(200 * time.Millisecond)
	require.True(t, c.Advance(Forward))

	// Without the reset the tick at 300ms would have moved to slide 2
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 1, c.State().ActiveIndex)

	require.Eventually(t, func() bool {
		return c.State().ActiveIndex == 2
	}, time.Second, 10*time.Millisecond)
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("next")
	assert.True(t, ok)
	assert.Equal(t, Forward, d)

	d, ok = ParseDirection("prev")
	assert.True(t, ok)
	assert.Equal(t, Backward, d)

	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
}

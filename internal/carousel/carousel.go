// Package carousel cycles the hero slides on a timer and on user navigation.
package carousel

import (
	"context"
	"errors"
	"sync"
	"time"

	"eaglesounds.in/internal/models"
)

var (
	ErrNoSlides        = errors.New("carousel: no slides")
	ErrIndexOutOfRange = errors.New("carousel: slide index out of range")
)

// Direction of a relative move
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// ParseDirection converts "next"/"prev" style names into a Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "next", "forward":
		return Forward, true
	case "prev", "previous", "backward":
		return Backward, true
	}
	return 0, false
}

const (
	DefaultAutoPlayInterval   = 7 * time.Second
	DefaultTransitionDuration = 500 * time.Millisecond
)

// Options configures a Controller
type Options struct {
	AutoPlayInterval   time.Duration
	TransitionDuration time.Duration
	// OnChange is called after every index or transition change, outside the lock
	OnChange func(State)
}

// State is a snapshot of the controller. Version increases with every
// change, so a later snapshot always carries a higher Version.
type State struct {
	Version       uint64       `json:"version"`
	ActiveIndex   int          `json:"active_index"`
	Transitioning bool         `json:"transitioning"`
	Count         int          `json:"count"`
	Slide         models.Slide `json:"slide"`
}

// Controller owns the active slide index and the autoplay timer.
// The active index is always within [0, len(slides)).
type Controller struct {
	mu            sync.Mutex
	slides        []models.Slide
	active        int
	transitioning bool
	transitionSeq uint64
	version       uint64
	transition    *time.Timer
	closed        bool

	opts  Options
	reset chan struct{}
}

// New creates a controller showing the first slide
func New(slides []models.Slide, opts Options) (*Controller, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	if opts.AutoPlayInterval <= 0 {
		opts.AutoPlayInterval = DefaultAutoPlayInterval
	}
	if opts.TransitionDuration < 0 {
		opts.TransitionDuration = 0
	}

	return &Controller{
		slides: append([]models.Slide(nil), slides...),
		opts:   opts,
		reset:  make(chan struct{}, 1),
	}, nil
}

// Advance moves one slide in the given direction, wrapping around.
// It is a no-op while a transition is in progress.
func (c *Controller) Advance(dir Direction) bool {
	return c.advance(dir, true)
}

// JumpTo moves directly to a slide. It is a no-op if the slide is already
// active or a transition is in progress.
func (c *Controller) JumpTo(index int) (bool, error) {
	if index < 0 || index >= len(c.slides) {
		return false, ErrIndexOutOfRange
	}
	return c.moveTo(func(int, int) int { return index }, true), nil
}

func (c *Controller) advance(dir Direction, manual bool) bool {
	return c.moveTo(func(i, n int) int {
		return (i + int(dir) + n) % n
	}, manual)
}

func (c *Controller) moveTo(next func(index, count int) int, manual bool) bool {
	c.mu.Lock()
	if c.closed || c.transitioning {
		c.mu.Unlock()
		return false
	}

	target := next(c.active, len(c.slides))
	if target == c.active {
		c.mu.Unlock()
		return false
	}

	c.active = target
	c.version++
	c.beginTransitionLocked()
	state := c.stateLocked()
	c.mu.Unlock()

	if manual {
		c.resetAutoPlay()
	}
	c.notify(state)
	return true
}

// beginTransitionLocked marks the carousel as animating and schedules the end
func (c *Controller) beginTransitionLocked() {
	if c.opts.TransitionDuration == 0 {
		return
	}
	c.transitioning = true
	c.transitionSeq++
	seq := c.transitionSeq
	c.transition = time.AfterFunc(c.opts.TransitionDuration, func() {
		c.endTransition(seq)
	})
}

// EndTransition finishes the current transition immediately
func (c *Controller) EndTransition() {
	c.mu.Lock()
	seq := c.transitionSeq
	c.mu.Unlock()
	c.endTransition(seq)
}

func (c *Controller) endTransition(seq uint64) {
	c.mu.Lock()
	if !c.transitioning || seq != c.transitionSeq {
		c.mu.Unlock()
		return
	}
	c.transitioning = false
	c.version++
	if c.transition != nil {
		c.transition.Stop()
		c.transition = nil
	}
	state := c.stateLocked()
	closed := c.closed
	c.mu.Unlock()

	if !closed {
		c.notify(state)
	}
}

// resetAutoPlay restarts the autoplay interval; never blocks
func (c *Controller) resetAutoPlay() {
	select {
	case c.reset <- struct{}{}:
	default:
	}
}

func (c *Controller) notify(state State) {
	if c.opts.OnChange != nil {
		c.opts.OnChange(state)
	}
}

// Run advances forward every AutoPlayInterval until ctx is cancelled. Manual
// navigation restarts the interval. On return the controller is closed and
// every timer it owns is stopped.
func (c *Controller) Run(ctx context.Context) {
	defer c.Close()

	timer := time.NewTimer(c.opts.AutoPlayInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.reset:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(c.opts.AutoPlayInterval)
		case <-timer.C:
			c.advance(Forward, false)
			timer.Reset(c.opts.AutoPlayInterval)
		}
	}
}

// Close stops the pending transition timer; later navigation is ignored
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.transitioning = false
	if c.transition != nil {
		c.transition.Stop()
		c.transition = nil
	}
}

// State returns a snapshot of the controller
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{
		Version:       c.version,
		ActiveIndex:   c.active,
		Transitioning: c.transitioning,
		Count:         len(c.slides),
		Slide:         c.slides[c.active],
	}
}

// Slides returns the slides in display order
func (c *Controller) Slides() []models.Slide {
	return append([]models.Slide(nil), c.slides...)
}

package effects

import (
	"context"
	"time"

	"eaglesounds.in/internal/models"
)

// DefaultFrameRate is the number of smoke frames produced per second
const DefaultFrameRate = 30

// Animator drives a SmokeSimulator from a frame ticker, the way a canvas
// effect is driven by animation-frame callbacks while it is mounted.
type Animator struct {
	sim      *SmokeSimulator
	interval time.Duration
	resize   chan models.Viewport
}

// NewAnimator creates an animator producing fps frames per second
func NewAnimator(sim *SmokeSimulator, fps int) *Animator {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	return &Animator{
		sim:      sim,
		interval: time.Second / time.Duration(fps),
		resize:   make(chan models.Viewport, 1),
	}
}

// Resize queues a viewport change; only the latest pending size is kept.
// Safe to call from any goroutine.
func (a *Animator) Resize(v models.Viewport) {
	for {
		select {
		case a.resize <- v:
			return
		default:
		}
		select {
		case <-a.resize:
		default:
		}
	}
}

// Run seeds the canvas, then steps and draws one frame per tick until ctx is
// cancelled or draw fails. The ticker is released on every return path.
func (a *Animator) Run(ctx context.Context, draw func(Frame) error) error {
	a.sim.Seed()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case v := <-a.resize:
			a.sim.Resize(v)
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			stats := a.sim.Step()
			frame := a.sim.Frame()
			frame.Stats = stats
			if err := draw(frame); err != nil {
				return err
			}
		}
	}
}

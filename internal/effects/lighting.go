package effects

import "time"

// Flash is a brief camera-style flash of light
type Flash struct {
	AtMs       int64   `json:"at_ms"`
	DurationMs int64   `json:"duration_ms"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Size       float64 `json:"size"`
	Opacity    float64 `json:"opacity"`
}

// FlashDuration is how long each flash stays visible
const FlashDuration = 150 * time.Millisecond

// FlashSchedule produces flashes separated by random 1-2s gaps until horizon
func FlashSchedule(rng *RNG, horizon time.Duration) []Flash {
	var flashes []Flash
	at := time.Duration(0)
	for {
		at += time.Duration(rng.Between(1000, 2000) * float64(time.Millisecond))
		if at >= horizon {
			return flashes
		}
		flashes = append(flashes, Flash{
			AtMs:       at.Milliseconds(),
			DurationMs: FlashDuration.Milliseconds(),
			X:          round3(rng.Between(10, 90)),
			Y:          round3(rng.Between(10, 90)),
			Size:       round3(rng.Between(100, 250)),
			Opacity:    round3(rng.Between(0.5, 0.8)),
		})
	}
}

// Spotlight is a pulsing coloured circle
type Spotlight struct {
	Color  string  `json:"color"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Timing Timing  `json:"timing"`
}

// Sparkle is a tiny twinkling dot
type Sparkle struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Timing Timing  `json:"timing"`
}

// LightingScene holds the stage lighting layers
type LightingScene struct {
	Beams      []string    `json:"beams"`
	Spotlights []Spotlight `json:"spotlights"`
	Sparkles   []Sparkle   `json:"sparkles"`
	Flashes    []Flash     `json:"flashes"`
	Loop       int64       `json:"loop_ms"`
}

// lightingLoop is the period after which the flash schedule repeats
const lightingLoop = 30 * time.Second

func newLightingScene(rng *RNG, p *Palette) *LightingScene {
	spots := make([]Spotlight, len(p.Spotlights))
	for i, color := range p.Spotlights {
		spots[i] = Spotlight{
			Color: color,
			Left:  float64(20 + i*15),
			Top:   float64(30 + (i%2)*20),
			Timing: Timing{
				Duration: float64(7 + i),
				Repeat:   true,
			},
		}
	}

	sparkles := make([]Sparkle, 40)
	for i := range sparkles {
		sparkles[i] = Sparkle{
			Left: round3(rng.Between(0, 100)),
			Top:  round3(rng.Between(0, 100)),
			Timing: Timing{
				Duration: round3(rng.Between(1, 3)),
				Delay:    round3(rng.Between(0, 5)),
				Repeat:   true,
			},
		}
	}

	return &LightingScene{
		Beams:      p.Beams,
		Spotlights: spots,
		Sparkles:   sparkles,
		Flashes:    FlashSchedule(rng, lightingLoop),
		Loop:       lightingLoop.Milliseconds(),
	}
}

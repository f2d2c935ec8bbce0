package effects

import (
	"fmt"

	"eaglesounds.in/internal/models"
)

// Tint is one of the colour variants a smoke blob is drawn with
type Tint struct {
	R, G, B uint8
}

// RGB formats the tint for an rgba() colour stop
func (t Tint) RGB() string {
	return fmt.Sprintf("%d, %d, %d", t.R, t.G, t.B)
}

// SmokeTints are the two colour variants of the smoke field
var SmokeTints = [2]Tint{
	{R: 120, G: 150, B: 255},
	{R: 220, G: 220, B: 255},
}

// SmokeConfig holds the sampling ranges and per-frame constants of the smoke field
type SmokeConfig struct {
	InitialParticles int     `json:"initial_particles"`
	SpawnChance      float64 `json:"spawn_chance"`
	Growth           float64 `json:"growth"`
	ExitY            float64 `json:"exit_y"`
	SpawnDepth       Range   `json:"spawn_depth"`
	Size             Range   `json:"size"`
	SpeedX           Range   `json:"speed_x"`
	SpeedY           Range   `json:"speed_y"`
	Opacity          Range   `json:"opacity"`
	FadeRate         Range   `json:"fade_rate"`
}

// DefaultSmokeConfig returns the settings of the hero smoke effect
func DefaultSmokeConfig() SmokeConfig {
	return SmokeConfig{
		InitialParticles: 15,
		SpawnChance:      0.1,
		Growth:           0.3,
		ExitY:            -200,
		SpawnDepth:       Range{Min: 0, Max: 100},
		Size:             Range{Min: 50, Max: 150},
		SpeedX:           Symmetric(1.5),
		SpeedY:           Range{Min: -4, Max: -1},
		Opacity:          Range{Min: 0, Max: 0.4},
		FadeRate:         Range{Min: 0.0005, Max: 0.0015},
	}
}

// Particle is a single soft circular smoke blob
type Particle struct {
	ID       uint64  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	SpeedX   float64 `json:"speed_x"`
	SpeedY   float64 `json:"speed_y"`
	Opacity  float64 `json:"opacity"`
	FadeRate float64 `json:"fade_rate"`
	Tint     Tint    `json:"-"`
}

// update advances the particle by one frame
func (p *Particle) update(growth float64) {
	p.X += p.SpeedX
	p.Y += p.SpeedY
	p.Opacity = clamp01(p.Opacity - p.FadeRate)
	p.Size += growth
}

// StepStats reports what happened during a single frame
type StepStats struct {
	Spawned int `json:"spawned"`
	Removed int `json:"removed"`
	Alive   int `json:"alive"`
}

// SmokeSimulator owns a pool of smoke particles drawn to a full-viewport canvas.
// It is not safe for concurrent use; one animation loop drives it.
type SmokeSimulator struct {
	cfg       SmokeConfig
	rng       *RNG
	width     float64
	height    float64
	particles []*Particle
	nextID    uint64
	frame     uint64
}

// NewSmokeSimulator creates a simulator sized to the given viewport
func NewSmokeSimulator(cfg SmokeConfig, viewport models.Viewport, rng *RNG) *SmokeSimulator {
	return &SmokeSimulator{
		cfg:       cfg,
		rng:       rng,
		width:     float64(viewport.Width),
		height:    float64(viewport.Height),
		particles: make([]*Particle, 0, cfg.InitialParticles*4),
	}
}

// Seed adds the initial batch of particles
func (s *SmokeSimulator) Seed() {
	for i := 0; i < s.cfg.InitialParticles; i++ {
		s.spawn()
	}
}

// Resize matches the canvas to a new viewport size
func (s *SmokeSimulator) Resize(viewport models.Viewport) {
	s.width = float64(viewport.Width)
	s.height = float64(viewport.Height)
}

// Viewport returns the current canvas size
func (s *SmokeSimulator) Viewport() models.Viewport {
	return models.Viewport{Width: int(s.width), Height: int(s.height)}
}

// spawn creates a particle just below the bottom edge of the canvas
func (s *SmokeSimulator) spawn() *Particle {
	s.nextID++
	p := &Particle{
		ID:       s.nextID,
		X:        s.rng.Between(0, s.width),
		Y:        s.height + s.cfg.SpawnDepth.Sample(s.rng),
		Size:     s.cfg.Size.Sample(s.rng),
		SpeedX:   s.cfg.SpeedX.Sample(s.rng),
		SpeedY:   s.cfg.SpeedY.Sample(s.rng),
		Opacity:  clamp01(s.cfg.Opacity.Sample(s.rng)),
		FadeRate: s.cfg.FadeRate.Sample(s.rng),
		Tint:     SmokeTints[s.rng.Intn(len(SmokeTints))],
	}
	s.particles = append(s.particles, p)
	return p
}

// expired reports whether a particle has faded out or drifted off the canvas
func (s *SmokeSimulator) expired(p *Particle) bool {
	if p.Opacity <= 0 {
		return true
	}
	if p.Y < s.cfg.ExitY {
		return true
	}
	return p.X+p.Size < 0 || p.X-p.Size > s.width
}

// Step advances the simulation by one animation frame
func (s *SmokeSimulator) Step() StepStats {
	s.frame++
	var stats StepStats

	if s.rng.Chance(s.cfg.SpawnChance) {
		s.spawn()
		stats.Spawned++
	}

	// Compact in place; removed particles are dropped exactly once
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.update(s.cfg.Growth)
		if s.expired(p) {
			stats.Removed++
			continue
		}
		alive = append(alive, p)
	}
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = alive
	stats.Alive = len(s.particles)

	return stats
}

// Len returns the number of live particles
func (s *SmokeSimulator) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the live particles
func (s *SmokeSimulator) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	for i, p := range s.particles {
		out[i] = *p
	}
	return out
}

// GradientStop is one colour stop of a radial gradient
type GradientStop struct {
	Offset float64 `json:"offset"`
	Alpha  float64 `json:"alpha"`
}

// Blob is a particle as drawn: a radial gradient circle
type Blob struct {
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Radius float64        `json:"radius"`
	Color  string         `json:"color"`
	Stops  []GradientStop `json:"stops"`
}

// Frame is a drawable snapshot of the smoke field
type Frame struct {
	Seq    uint64    `json:"seq"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Blobs  []Blob    `json:"blobs"`
	Stats  StepStats `json:"stats"`
}

// Frame renders the current particles as radial gradient blobs
func (s *SmokeSimulator) Frame() Frame {
	blobs := make([]Blob, len(s.particles))
	for i, p := range s.particles {
		blobs[i] = Blob{
			X:      round3(p.X),
			Y:      round3(p.Y),
			Radius: round3(p.Size),
			Color:  p.Tint.RGB(),
			Stops: []GradientStop{
				{Offset: 0, Alpha: round3(p.Opacity)},
				{Offset: 0.5, Alpha: round3(p.Opacity * 0.5)},
				{Offset: 1, Alpha: 0},
			},
		}
	}

	return Frame{
		Seq:    s.frame,
		Width:  int(s.width),
		Height: int(s.height),
		Blobs:  blobs,
		Stats:  StepStats{Alive: len(s.particles)},
	}
}

// SmokeLayer is a slowly drifting blurred blob painted above the canvas
type SmokeLayer struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Motion  Motion  `json:"motion"`
	Timing  Timing  `json:"timing"`
	Opacity float64 `json:"opacity"`
}

// SmokeScene is the declarative part of the smoke effect
type SmokeScene struct {
	Config SmokeConfig  `json:"config"`
	Layers []SmokeLayer `json:"layers"`
}

// newSmokeScene samples the floating blur blobs layered over the simulator
func newSmokeScene(rng *RNG) *SmokeScene {
	layers := make([]SmokeLayer, 20)
	for i := range layers {
		size := rng.Between(20, 100)
		layers[i] = SmokeLayer{
			Width:   round3(size),
			Height:  round3(rng.Between(20, 100)),
			Left:    round3(rng.Between(0, 100)),
			Top:     round3(rng.Between(0, 100)),
			Motion:  Motion{DX: round3(rng.Between(-50, 50)), DY: round3(-rng.Between(0, 100))},
			Timing:  Timing{Duration: round3(rng.Between(10, 25)), Delay: round3(rng.Between(0, 10)), Repeat: true},
			Opacity: 0.3,
		}
	}
	return &SmokeScene{Config: DefaultSmokeConfig(), Layers: layers}
}

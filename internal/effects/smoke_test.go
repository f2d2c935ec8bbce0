package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eaglesounds.in/internal/models"
)

var testViewport = models.Viewport{Width: 800, Height: 600}

// fixedConfig spawns identical particles and never spawns on Step
func fixedConfig() SmokeConfig {
	cfg := DefaultSmokeConfig()
	cfg.InitialParticles = 3
	cfg.SpawnChance = 0
	cfg.SpawnDepth = Range{Min: 0, Max: 0}
	cfg.Size = Range{Min: 50, Max: 50}
	cfg.SpeedX = Range{Min: 0, Max: 0}
	cfg.SpeedY = Range{Min: -1, Max: -1}
	cfg.Opacity = Range{Min: 0.35, Max: 0.35}
	cfg.FadeRate = Range{Min: 0.1, Max: 0.1}
	return cfg
}

func TestSmokeSeedCreatesInitialBatch(t *testing.T) {
	sim := NewSmokeSimulator(DefaultSmokeConfig(), testViewport, NewRNG(7))
	sim.Seed()

	require.Equal(t, 15, sim.Len())
	for _, p := range sim.Particles() {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 800.0)
		assert.GreaterOrEqual(t, p.Y, 600.0)
		assert.Less(t, p.Y, 700.0)
		assert.GreaterOrEqual(t, p.Size, 50.0)
		assert.Less(t, p.Size, 150.0)
		assert.Less(t, p.SpeedY, -1.0+1e-9)
		assert.GreaterOrEqual(t, p.SpeedY, -4.0)
		assert.Contains(t, SmokeTints, p.Tint)
	}
}

func TestSmokeSeedMixesTints(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		sim := NewSmokeSimulator(DefaultSmokeConfig(), testViewport, NewRNG(seed))
		sim.Seed()

		seen := make(map[Tint]int)
		for _, p := range sim.Particles() {
			seen[p.Tint]++
		}
		for _, tint := range SmokeTints {
			assert.Positive(t, seen[tint], "seed %d never produced tint %v", seed, tint)
		}
	}
}

func TestSmokeOpacityNonIncreasing(t *testing.T) {
	sim := NewSmokeSimulator(DefaultSmokeConfig(), testViewport, NewRNG(42))
	sim.Seed()

	last := make(map[uint64]float64)
	for _, p := range sim.Particles() {
		last[p.ID] = p.Opacity
	}

	for frame := 0; frame < 2000; frame++ {
		sim.Step()
		for _, p := range sim.Particles() {
			require.GreaterOrEqual(t, p.Opacity, 0.0)
			require.LessOrEqual(t, p.Opacity, 1.0)
			if prev, ok := last[p.ID]; ok {
				require.LessOrEqual(t, p.Opacity, prev, "particle %d brightened", p.ID)
			}
			last[p.ID] = p.Opacity
		}
	}
}

func TestSmokeParticleRemovedWhenFaded(t *testing.T) {
	sim := NewSmokeSimulator(fixedConfig(), testViewport, NewRNG(1))
	sim.Seed()
	require.Equal(t, 3, sim.Len())

	// 0.35 fades by 0.1 per frame and reaches zero on the fourth frame
	for i := 0; i < 3; i++ {
		stats := sim.Step()
		assert.Equal(t, 0, stats.Removed)
		assert.Equal(t, 3, stats.Alive)
	}

	stats := sim.Step()
	assert.Equal(t, 3, stats.Removed)
	assert.Equal(t, 0, sim.Len())

	stats = sim.Step()
	assert.Equal(t, 0, stats.Removed, "particles are removed exactly once")
}

func TestSmokeParticleRemovedAboveCanvas(t *testing.T) {
	cfg := fixedConfig()
	cfg.FadeRate = Range{Min: 0.0001, Max: 0.0001}
	cfg.SpeedY = Range{Min: -500, Max: -500}
	sim := NewSmokeSimulator(cfg, models.Viewport{Width: 400, Height: 100}, NewRNG(3))
	sim.Seed()

	stats := sim.Step()
	assert.Equal(t, 3, stats.Removed)
	assert.Zero(t, sim.Len())
}

func TestSmokeParticleRemovedBesideCanvas(t *testing.T) {
	cfg := fixedConfig()
	cfg.FadeRate = Range{Min: 0.0001, Max: 0.0001}
	cfg.SpeedX = Range{Min: 2000, Max: 2000}
	sim := NewSmokeSimulator(cfg, testViewport, NewRNG(3))
	sim.Seed()

	stats := sim.Step()
	assert.Equal(t, 3, stats.Removed)
}

func TestSmokeSpawnsOverTime(t *testing.T) {
	cfg := DefaultSmokeConfig()
	cfg.InitialParticles = 0
	cfg.SpawnChance = 1
	sim := NewSmokeSimulator(cfg, testViewport, NewRNG(9))

	spawned := 0
	for i := 0; i < 10; i++ {
		spawned += sim.Step().Spawned
	}
	assert.Equal(t, 10, spawned)
	assert.Equal(t, 10, sim.Len())
}

func TestSmokeResize(t *testing.T) {
	cfg := fixedConfig()
	sim := NewSmokeSimulator(cfg, testViewport, NewRNG(5))
	sim.Resize(models.Viewport{Width: 200, Height: 1000})
	sim.Seed()

	assert.Equal(t, models.Viewport{Width: 200, Height: 1000}, sim.Viewport())
	for _, p := range sim.Particles() {
		assert.Less(t, p.X, 200.0)
		assert.Equal(t, 1000.0, p.Y)
	}
}

func TestSmokeDeterministicForSeed(t *testing.T) {
	a := NewSmokeSimulator(DefaultSmokeConfig(), testViewport, NewRNG(99))
	b := NewSmokeSimulator(DefaultSmokeConfig(), testViewport, NewRNG(99))
	a.Seed()
	b.Seed()
	for i := 0; i < 50; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Frame(), b.Frame())
}

func TestSmokeFrameGradient(t *testing.T) {
	sim := NewSmokeSimulator(fixedConfig(), testViewport, NewRNG(11))
	sim.Seed()
	sim.Step()

	frame := sim.Frame()
	assert.Equal(t, uint64(1), frame.Seq)
	assert.Equal(t, 800, frame.Width)
	require.Len(t, frame.Blobs, 3)

	blob := frame.Blobs[0]
	assert.InDelta(t, 50.3, blob.Radius, 1e-9)
	require.Len(t, blob.Stops, 3)
	assert.InDelta(t, 0.25, blob.Stops[0].Alpha, 1e-9)
	assert.InDelta(t, 0.125, blob.Stops[1].Alpha, 1e-3)
	assert.Zero(t, blob.Stops[2].Alpha)
	assert.Contains(t, []string{"120, 150, 255", "220, 220, 255"}, blob.Color)
}

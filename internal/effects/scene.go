package effects

import (
	"fmt"

	"eaglesounds.in/internal/models"
)

// SceneConfig selects the effect to generate and the seed to sample it with
type SceneConfig struct {
	Effect models.EffectType `json:"effect"`
	Seed   uint64            `json:"seed"`
	Name   string            `json:"name,omitempty"`
}

// Scene is the generated, declarative definition of a decorative effect.
// Exactly one of the effect fields is set.
type Scene struct {
	Effect   models.EffectType `json:"effect"`
	Seed     uint64            `json:"seed"`
	Confetti *ConfettiScene    `json:"confetti,omitempty"`
	Lighting *LightingScene    `json:"lighting,omitempty"`
	Wave     *WaveScene        `json:"wave,omitempty"`
	Smoke    *SmokeScene       `json:"smoke,omitempty"`
}

// Elements returns the number of animated elements in the scene
func (s *Scene) Elements() int {
	switch {
	case s.Confetti != nil:
		return len(s.Confetti.Falling) + len(s.Confetti.Floating)
	case s.Lighting != nil:
		return len(s.Lighting.Spotlights) + len(s.Lighting.Sparkles) + len(s.Lighting.Flashes)
	case s.Wave != nil:
		return len(s.Wave.Center) + len(s.Wave.Left) + len(s.Wave.Right) + len(s.Wave.Notes)
	case s.Smoke != nil:
		return len(s.Smoke.Layers)
	}
	return 0
}

// SceneGenerator generates scene data from configuration
type SceneGenerator struct {
	config  *SceneConfig
	palette *Palette
	rng     *RNG
}

// NewSceneGenerator creates a generator for the given config
func NewSceneGenerator(config *SceneConfig) *SceneGenerator {
	return &SceneGenerator{
		config:  config,
		palette: DefaultPalette(),
		rng:     NewRNG(config.Seed),
	}
}

// Generate produces the scene definition
func (sg *SceneGenerator) Generate() (*Scene, error) {
	scene := &Scene{
		Effect: sg.config.Effect,
		Seed:   sg.config.Seed,
	}

	switch sg.config.Effect {
	case models.EffectConfetti:
		scene.Confetti = newConfettiScene(sg.rng, sg.palette)
	case models.EffectLight:
		scene.Lighting = newLightingScene(sg.rng, sg.palette)
	case models.EffectMusic:
		scene.Wave = newWaveScene(sg.rng, sg.palette)
	case models.EffectSmoke:
		scene.Smoke = newSmokeScene(sg.rng)
	default:
		return nil, fmt.Errorf("no scene for effect %q", sg.config.Effect)
	}

	return scene, nil
}

// Generate is a shorthand for generating a single scene
func Generate(effect models.EffectType, seed uint64) (*Scene, error) {
	return NewSceneGenerator(&SceneConfig{Effect: effect, Seed: seed}).Generate()
}

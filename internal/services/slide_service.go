package services

import (
	"fmt"
	"sync"

	"eaglesounds.in/internal/effects"
	"eaglesounds.in/internal/models"
)

// SlideService serves the hero slides and the effect scenes they display
type SlideService struct {
	slides *models.SlideList

	mu     sync.Mutex
	scenes map[string]*effects.Scene // cached scenes
}

// NewSlideService creates a new SlideService
func NewSlideService(slides *models.SlideList) *SlideService {
	return &SlideService{
		slides: slides,
		scenes: make(map[string]*effects.Scene),
	}
}

// GetAll returns all slides
func (s *SlideService) GetAll() []models.Slide {
	return s.slides.Slides
}

// GetByIndex returns the slide at index
func (s *SlideService) GetByIndex(index int) (*models.Slide, error) {
	if index < 0 || index >= len(s.slides.Slides) {
		return nil, fmt.Errorf("slide %d not found", index)
	}
	return &s.slides.Slides[index], nil
}

// Scene returns the generated scene for an effect and seed. Scenes are pure
// functions of their inputs, so each one is generated once and cached.
func (s *SlideService) Scene(effect models.EffectType, seed uint64) (*effects.Scene, error) {
	key := fmt.Sprintf("%s:%d", effect, seed)

	s.mu.Lock()
	defer s.mu.Unlock()

	if scene, cached := s.scenes[key]; cached {
		return scene, nil
	}

	scene, err := effects.Generate(effect, seed)
	if err != nil {
		return nil, err
	}

	s.scenes[key] = scene
	return scene, nil
}

// SmokeFrames runs a fresh simulator for n frames and returns every frame
func (s *SlideService) SmokeFrames(viewport models.Viewport, n int, seed uint64) []effects.Frame {
	sim := effects.NewSmokeSimulator(effects.DefaultSmokeConfig(), viewport, effects.NewRNG(seed))
	sim.Seed()

	frames := make([]effects.Frame, 0, n)
	for i := 0; i < n; i++ {
		stats := sim.Step()
		frame := sim.Frame()
		frame.Stats = stats
		frames = append(frames, frame)
	}
	return frames
}

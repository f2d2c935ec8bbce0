package models

import "fmt"

// EffectType tags the decorative effect shown behind a slide
type EffectType string

const (
	EffectNone     EffectType = "none"
	EffectMusic    EffectType = "music"
	EffectLight    EffectType = "light"
	EffectSmoke    EffectType = "smoke"
	EffectConfetti EffectType = "confetti"
)

// EffectTypes lists every effect that renders something
var EffectTypes = []EffectType{EffectMusic, EffectLight, EffectSmoke, EffectConfetti}

// ParseEffectType converts a string into an EffectType
func ParseEffectType(s string) (EffectType, error) {
	switch EffectType(s) {
	case EffectNone, "":
		return EffectNone, nil
	case EffectMusic, EffectLight, EffectSmoke, EffectConfetti:
		return EffectType(s), nil
	}
	return EffectNone, fmt.Errorf("unknown effect type: %s", s)
}

// Slide represents a promotional carousel slide
type Slide struct {
	Index      int        `json:"index"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	ButtonText string     `json:"button_text"`
	ButtonLink string     `json:"button_link"`
	Image      string     `json:"image,omitempty"`
	Effect     EffectType `json:"effect,omitempty"`
}

// SlideList wraps the array of slides
type SlideList struct {
	Slides []Slide `json:"slides"`
}

// DefaultSlides returns the home page hero slides
func DefaultSlides() *SlideList {
	return &SlideList{Slides: []Slide{
		{
			Index:      0,
			Title:      "Premium DJ Services",
			Subtitle:   "Creating unforgettable experiences for every event",
			ButtonText: "Explore DJ Services",
			ButtonLink: "/vendor#dj",
			Image:      "/hero-dj.jpg",
			Effect:     EffectMusic,
		},
		{
			Index:      1,
			Title:      "Professional Photography",
			Subtitle:   "Capturing your precious moments perfectly",
			ButtonText: "View Photography",
			ButtonLink: "/vendor#photos",
			Image:      "/hero-photo.jpg",
			Effect:     EffectLight,
		},
		{
			Index:      2,
			Title:      "Atmospheric Smoke Effects",
			Subtitle:   "Add drama and excitement to your events",
			ButtonText: "Discover Effects",
			ButtonLink: "/vendor#smoke",
			Image:      "/hero-smoke.jpg",
			Effect:     EffectSmoke,
		},
		{
			Index:      3,
			Title:      "Complete Event Solutions",
			Subtitle:   "Everything you need for a perfect celebration",
			ButtonText: "Get a Quote",
			ButtonLink: "/vendor",
			Image:      "/hero-complete.jpg",
			Effect:     EffectConfetti,
		},
	}}
}

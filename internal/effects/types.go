package effects

import "math"

// Range is a declared sampling interval [Min, Max)
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Sample draws a value from the range
func (rg Range) Sample(r *RNG) float64 {
	return r.Between(rg.Min, rg.Max)
}

// Contains checks if v lies within the range (Max inclusive for degenerate ranges)
func (rg Range) Contains(v float64) bool {
	if rg.Min == rg.Max {
		return v == rg.Min
	}
	return v >= rg.Min && v < rg.Max
}

// Symmetric returns the range [-spread/2, spread/2)
func Symmetric(spread float64) Range {
	return Range{Min: -spread / 2, Max: spread / 2}
}

// Point is a 2D position in canvas coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Motion describes a keyframed transition from zero to the given offsets
type Motion struct {
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Rotate float64 `json:"rotate,omitempty"`
}

// Timing describes how an element animates over time, in seconds
type Timing struct {
	Duration    float64 `json:"duration"`
	Delay       float64 `json:"delay"`
	RepeatDelay float64 `json:"repeat_delay,omitempty"`
	Repeat      bool    `json:"repeat"`
}

// clamp01 limits a value to [0, 1]
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// round3 keeps generated definitions compact when serialized
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

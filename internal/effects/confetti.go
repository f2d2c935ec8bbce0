package effects

// ConfettiPiece is one animated confetti element
type ConfettiPiece struct {
	Shape    string  `json:"shape"`
	ClipPath string  `json:"clip_path,omitempty"`
	Color    string  `json:"color"`
	Size     float64 `json:"size"`
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	Motion   Motion  `json:"motion"`
	Timing   Timing  `json:"timing"`
	Peak     float64 `json:"peak_opacity"`
}

// ConfettiScene holds the falling and floating confetti layers
type ConfettiScene struct {
	Falling  []ConfettiPiece `json:"falling"`
	Floating []ConfettiPiece `json:"floating"`
}

const (
	fallingPieces  = 100
	floatingPieces = 30
)

// newConfettiScene samples both confetti layers. Colours cycle through the
// palette in order; shapes are picked at random.
func newConfettiScene(rng *RNG, p *Palette) *ConfettiScene {
	scene := &ConfettiScene{
		Falling:  make([]ConfettiPiece, fallingPieces),
		Floating: make([]ConfettiPiece, floatingPieces),
	}

	for i := range scene.Falling {
		shape := rng.Choice(p.Shapes)
		scene.Falling[i] = ConfettiPiece{
			Shape:    shape,
			ClipPath: ClipPaths[shape],
			Color:    p.Confetti[i%len(p.Confetti)],
			Size:     round3(rng.Between(10, 25)),
			Left:     round3(rng.Between(0, 100)),
			Top:      -5,
			Motion: Motion{
				DX:     round3(rng.Between(-100, 100)),
				DY:     105,
				Rotate: round3(rng.Between(0, 360) * rng.Sign()),
			},
			Timing: Timing{
				Duration:    round3(rng.Between(5, 10)),
				Delay:       round3(rng.Between(0, 20)),
				RepeatDelay: round3(rng.Between(0, 5)),
				Repeat:      true,
			},
			Peak: 0.8,
		}
	}

	for i := range scene.Floating {
		shape := rng.Choice(p.Shapes)
		scene.Floating[i] = ConfettiPiece{
			Shape:    shape,
			ClipPath: ClipPaths[shape],
			Color:    p.Confetti[i%len(p.Confetti)],
			Size:     round3(rng.Between(12, 30)),
			Left:     round3(rng.Between(0, 100)),
			Top:      round3(rng.Between(0, 100)),
			Motion: Motion{
				DX:     round3(rng.Between(-75, 75)),
				DY:     round3(rng.Between(-50, 50)),
				Rotate: 360 * rng.Sign(),
			},
			Timing: Timing{
				Duration:    round3(rng.Between(8, 15)),
				Delay:       round3(rng.Between(0, 5)),
				RepeatDelay: round3(rng.Between(0, 3)),
				Repeat:      true,
			},
			Peak: 0.6,
		}
	}

	return scene
}

package effects

// Bar is one equaliser bar of the music wave effect
type Bar struct {
	Height float64 `json:"height"`
	Timing Timing  `json:"timing"`
}

// Note is a small dot floating up from the equaliser
type Note struct {
	Size   float64 `json:"size"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Color  string  `json:"color"`
	Motion Motion  `json:"motion"`
	Timing Timing  `json:"timing"`
}

// WaveScene holds the audio-wave layers
type WaveScene struct {
	Center []Bar  `json:"center"`
	Left   []Bar  `json:"left"`
	Right  []Bar  `json:"right"`
	Notes  []Note `json:"notes"`
}

func newWaveScene(rng *RNG, p *Palette) *WaveScene {
	center := make([]Bar, 100)
	for i := range center {
		boost := 1.0
		if i%4 == 0 {
			boost = 2
		}
		center[i] = Bar{
			Height: round3(rng.Between(0, 50) + 5*boost),
			Timing: Timing{Duration: round3(rng.Between(1, 1.5)), Delay: round3(float64(i) * 0.02), Repeat: true},
		}
	}

	side := func() []Bar {
		bars := make([]Bar, 20)
		for i := range bars {
			bars[i] = Bar{
				Height: round3(rng.Between(10, 70)),
				Timing: Timing{Duration: round3(rng.Between(0.8, 1.5)), Delay: round3(float64(i) * 0.05), Repeat: true},
			}
		}
		return bars
	}

	notes := make([]Note, 30)
	for i := range notes {
		notes[i] = Note{
			Size:   round3(rng.Between(2, 8)),
			Left:   round3(rng.Between(0, 100)),
			Top:    round3(rng.Between(0, 100)),
			Color:  rng.Choice(p.Notes),
			Motion: Motion{DX: round3(rng.Between(-25, 25)), DY: round3(-rng.Between(100, 200))},
			Timing: Timing{Duration: round3(rng.Between(3, 6)), Delay: round3(rng.Between(0, 5)), Repeat: true},
		}
	}

	return &WaveScene{Center: center, Left: side(), Right: side(), Notes: notes}
}

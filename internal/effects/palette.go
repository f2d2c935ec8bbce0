package effects

// Palette defines the colours and shapes available to the decorative effects
type Palette struct {
	// Confetti
	Confetti []string
	Shapes   []string

	// Lighting
	Spotlights []string
	Beams      []string

	// Music wave
	Notes []string
}

// Confetti shapes
const (
	ShapeStar      = "star"
	ShapeHeart     = "heart"
	ShapeBolt      = "bolt"
	ShapeMusic     = "music"
	ShapeDiamond   = "diamond"
	ShapeSparkles  = "sparkles"
	ShapeSnowflake = "snowflake"
	ShapePopper    = "party-popper"
	ShapePentagon  = "pentagon"
	ShapeRibbon    = "ribbon"
	ShapeHexagon   = "hexagon"
	ShapeTrapezoid = "trapezoid"
)

// ClipPaths maps the polygon confetti shapes to CSS clip-path values
var ClipPaths = map[string]string{
	ShapeDiamond:   "polygon(50% 0%, 100% 50%, 50% 100%, 0% 50%)",
	ShapePentagon:  "polygon(50% 0%, 100% 38%, 82% 100%, 18% 100%, 0% 38%)",
	ShapeRibbon:    "polygon(0% 0%, 100% 0%, 100% 25%, 0% 75%)",
	ShapeHexagon:   "polygon(25% 0%, 75% 0%, 100% 50%, 75% 100%, 25% 100%, 0% 50%)",
	ShapeTrapezoid: "polygon(20% 0%, 80% 0%, 100% 100%, 0% 100%)",
}

// DefaultPalette returns the standard effect palette
func DefaultPalette() *Palette {
	return &Palette{
		Confetti: []string{
			"#FF5252", // red
			"#FF9800", // orange
			"#FFEB3B", // yellow
			"#4CAF50", // green
			"#2196F3", // blue
			"#9C27B0", // purple
			"#E91E63", // pink
		},
		Shapes: []string{
			ShapeStar, ShapeHeart, ShapeBolt, ShapeMusic, ShapeDiamond, ShapeSparkles,
			ShapeSnowflake, ShapePopper, ShapePentagon, ShapeRibbon, ShapeHexagon, ShapeTrapezoid,
		},
		Spotlights: []string{"blue-500/30", "purple-500/30", "cyan-500/30", "pink-500/30", "green-500/30"},
		Beams:      []string{"blue-400/30", "purple-400/30", "white/20"},
		Notes:      []string{"#3b82f6", "#10b981"},
	}
}

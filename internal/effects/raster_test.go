package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameDensity(t *testing.T) {
	f := Frame{
		Width:  100,
		Height: 100,
		Blobs: []Blob{{
			X: 50, Y: 50, Radius: 30,
			Stops: []GradientStop{{Offset: 0, Alpha: 0.4}, {Offset: 0.5, Alpha: 0.2}, {Offset: 1, Alpha: 0}},
		}},
	}

	grid := f.Density(10, 10)
	require.Len(t, grid, 10)
	require.Len(t, grid[0], 10)

	assert.Greater(t, grid[4][4], grid[4][2], "densest near the centre")
	assert.Zero(t, grid[0][0], "corner is outside the blob")
	assert.LessOrEqual(t, grid[4][4], 0.4)
}

func TestFrameDensityClamps(t *testing.T) {
	blob := Blob{X: 5, Y: 5, Radius: 50, Stops: []GradientStop{{Alpha: 0.9}}}
	f := Frame{Width: 10, Height: 10, Blobs: []Blob{blob, blob, blob}}

	grid := f.Density(2, 2)
	for _, row := range grid {
		for _, v := range row {
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestFrameDensityEmpty(t *testing.T) {
	grid := Frame{}.Density(4, 3)
	require.Len(t, grid, 3)
	assert.Equal(t, []float64{0, 0, 0, 0}, grid[0])
}

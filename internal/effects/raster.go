package effects

import "math"

// Density samples the frame on a cols x rows grid, returning the summed blob
// alpha at each cell centre clamped to [0, 1]. The radial stops (0, a),
// (0.5, a/2) and (1, 0) make alpha fall off linearly with distance.
func (f Frame) Density(cols, rows int) [][]float64 {
	grid := make([][]float64, rows)
	for i := range grid {
		grid[i] = make([]float64, cols)
	}
	if cols <= 0 || rows <= 0 || f.Width <= 0 || f.Height <= 0 {
		return grid
	}

	cellW := float64(f.Width) / float64(cols)
	cellH := float64(f.Height) / float64(rows)

	for _, b := range f.Blobs {
		if b.Radius <= 0 || len(b.Stops) == 0 {
			continue
		}
		alpha := b.Stops[0].Alpha

		// Only visit the cells the blob's bounding box covers
		c0 := max(0, int((b.X-b.Radius)/cellW))
		c1 := min(cols-1, int((b.X+b.Radius)/cellW))
		r0 := max(0, int((b.Y-b.Radius)/cellH))
		r1 := min(rows-1, int((b.Y+b.Radius)/cellH))

		for r := r0; r <= r1; r++ {
			cy := (float64(r) + 0.5) * cellH
			for c := c0; c <= c1; c++ {
				cx := (float64(c) + 0.5) * cellW
				d := math.Hypot(cx-b.X, cy-b.Y) / b.Radius
				if d < 1 {
					grid[r][c] += alpha * (1 - d)
				}
			}
		}
	}

	for _, row := range grid {
		for i := range row {
			row[i] = clamp01(row[i])
		}
	}
	return grid
}

package patterns

import (
	"sparselife/pkg/core"

	perlin "github.com/aquilax/go-perlin"
)

const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinDepth = 3
	perlinScale = 12.0
)

// Random generates an h×w pattern where each cell is live with the given
// probability. The same seed always produces the same pattern.
func Random(seed int64, h, w int, density float64) [][]int {
	rng := core.NewRNG(seed)
	rows := make([][]int, max(h, 0))
	for r := range rows {
		row := make([]int, max(w, 0))
		for c := range row {
			if rng.Chance(density) {
				row[c] = 1
			}
		}
		rows[r] = row
	}
	return rows
}

// Soup generates an h×w pattern whose live cells cluster into blobs instead
// of uniform static. A Perlin noise field scales the per-cell density, so
// dense pockets and dead zones emerge while the overall fill stays close to
// the requested density. Deterministic per seed.
func Soup(seed int64, h, w int, density float64) [][]int {
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinDepth, seed)
	rng := core.NewRNG(seed)
	rows := make([][]int, max(h, 0))
	for r := range rows {
		row := make([]int, max(w, 0))
		for c := range row {
			// Noise2D is roughly in [-1, 1]; remap to [0, 2] so the
			// average multiplier is 1 and overall fill tracks density.
			n := noise.Noise2D(float64(c)/perlinScale, float64(r)/perlinScale) + 1
			if rng.Chance(density * n) {
				row[c] = 1
			}
		}
		rows[r] = row
	}
	return rows
}

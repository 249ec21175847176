// Package noise synthesizes smooth, reproducible 2-D scalar fields used as
// paper and ink grain.
package noise

import (
	"math/rand/v2"

	"github.com/gogpu/ink/internal/image"
)

// streamFiber separates the noise stream from other PCG streams seeded with
// the same value.
const streamFiber = 0x6e6f697365

// Field generates value noise. Each call advances the field's private
// random stream, so a sequence of calls is reproducible from the seed but
// two consecutive calls return different fields.
//
// A Field is not safe for concurrent use.
type Field struct {
	rng *rand.Rand
}

// New creates a Field seeded with seed.
func New(seed int64) *Field {
	return &Field{rng: rand.New(rand.NewPCG(uint64(seed), streamFiber))} //nolint:gosec // seed bits are reinterpreted, not truncated
}

// Sample returns a height x width grid of values in [0, 1].
//
// A lattice of max(2, width*scale) x max(2, height*scale) independent
// uniform values is drawn row by row and resampled with a cubic spline
// directly to the requested shape. Spline overshoot is clipped.
// Non-positive dimensions yield an empty grid.
func (f *Field) Sample(width, height int, scale float64) [][]float64 {
	if width <= 0 || height <= 0 {
		return [][]float64{}
	}
	gw := latticeExtent(width, scale)
	gh := latticeExtent(height, scale)

	lattice := make([][]float64, gh)
	for y := range lattice {
		row := make([]float64, gw)
		for x := range row {
			row[x] = f.rng.Float64()
		}
		lattice[y] = row
	}

	grid := image.ResizeGrid(lattice, width, height)
	for _, row := range grid {
		for x, v := range row {
			row[x] = clip01(v)
		}
	}
	return grid
}

// FiberTexture combines a coarse and a fine sample into paper-fiber grain:
// broad blotches from the coarse octave, grain from the fine one, then a
// contrast stretch. The result is meant as a per-pixel threshold field, not
// as an image.
func (f *Field) FiberTexture(width, height int) [][]float64 {
	base := f.Sample(width, height, 0.2)
	fine := f.Sample(width, height, 0.8)
	for y, row := range base {
		for x, b := range row {
			row[x] = clip01((0.6*b + 0.4*fine[y][x] - 0.3) * 2.0)
		}
	}
	return base
}

func latticeExtent(n int, scale float64) int {
	v := float64(n) * scale
	if !(v >= 2) {
		return 2
	}
	if v > float64(n) {
		// Finer than one lattice point per pixel adds nothing.
		return max(n, 2)
	}
	return int(v)
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

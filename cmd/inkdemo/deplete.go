package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// depletion returns the brush dryness for each of n characters written
// after one dip: the brush starts at from and runs dry toward to, slowly
// at first and faster as the ink gives out.
func depletion(from, to float64, n int) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if n == 1 || from == to {
		for i := range out {
			out[i] = from
		}
		return out
	}

	tw := gween.New(float32(from), float32(to), float32(n-1), ease.InQuad)
	v, _ := tw.Update(0)
	for i := range out {
		out[i] = min(1, max(0, float64(v)))
		v, _ = tw.Update(1)
	}
	return out
}

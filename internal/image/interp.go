package image

import "math"

// ResizeGrid upsamples (or downsamples) a row-major grid of values to exactly
// width x height using Catmull-Rom cubic interpolation.
//
// Sample positions are corner aligned: output column 0 maps to source column
// 0 and output column width-1 maps to the last source column. The output
// shape is fixed by construction, so callers never have to crop or pad.
// Values may overshoot the input range; clamping is left to the caller.
func ResizeGrid(src [][]float64, width, height int) [][]float64 {
	if width <= 0 || height <= 0 {
		return [][]float64{}
	}
	out := make([][]float64, height)
	srcH := len(src)
	if srcH == 0 || len(src[0]) == 0 {
		for y := range out {
			out[y] = make([]float64, width)
		}
		return out
	}
	srcW := len(src[0])

	xs := axisPositions(width, srcW)
	ys := axisPositions(height, srcH)

	var vals [4][4]float64
	for y := range height {
		row := make([]float64, width)
		fy := ys[y]
		y0 := int(math.Floor(fy))
		ty := fy - float64(y0)
		for x := range width {
			fx := xs[x]
			x0 := int(math.Floor(fx))
			tx := fx - float64(x0)
			for dy := -1; dy <= 2; dy++ {
				sy := clamp(y0+dy, 0, srcH-1)
				for dx := -1; dx <= 2; dx++ {
					vals[dy+1][dx+1] = src[sy][clamp(x0+dx, 0, srcW-1)]
				}
			}
			row[x] = bicubicInterp(vals, tx, ty)
		}
		out[y] = row
	}
	return out
}

// axisPositions maps n output samples onto a source axis of length m.
func axisPositions(n, m int) []float64 {
	pos := make([]float64, n)
	if n == 1 || m == 1 {
		return pos
	}
	step := float64(m-1) / float64(n-1)
	for i := range pos {
		pos[i] = float64(i) * step
	}
	return pos
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
func cubicWeight(t float64) float64 {
	// Catmull-Rom spline (Mitchell-Netravali with B=0, C=0.5):
	// |t| < 1: (1.5|t|³ - 2.5|t|² + 1)
	// 1 ≤ |t| < 2: (-0.5|t|³ + 2.5|t|² - 4|t| + 2)
	// |t| ≥ 2: 0
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}

// bicubicInterp performs bicubic interpolation on a 4x4 grid using Catmull-Rom weights.
func bicubicInterp(vals [4][4]float64, tx, ty float64) float64 {
	wx := [4]float64{
		cubicWeight(tx + 1),
		cubicWeight(tx),
		cubicWeight(tx - 1),
		cubicWeight(tx - 2),
	}
	wy := [4]float64{
		cubicWeight(ty + 1),
		cubicWeight(ty),
		cubicWeight(ty - 1),
		cubicWeight(ty - 2),
	}

	var result float64
	for i := range 4 {
		for j := range 4 {
			//nolint:gosec // G602: arrays are fixed size [4][4] and loop is bounded by 4
			result += vals[i][j] * wx[j] * wy[i]
		}
	}

	return result
}

package filter

import "math"

// DistanceTransform returns, for every pixel of a width x height plane, the
// exact Euclidean distance to the nearest pixel where inside is false.
// Outside pixels get 0. When the plane has no outside pixel at all, every
// distance is +Inf.
//
// The implementation is the two-pass lower-envelope algorithm of
// Felzenszwalb and Huttenlocher, linear in the number of pixels.
func DistanceTransform(inside []bool, width, height int) []float64 {
	n := width * height
	if width <= 0 || height <= 0 || len(inside) < n {
		return make([]float64, max(n, 0))
	}

	sq := make([]float64, n)
	for i := 0; i < n; i++ {
		if inside[i] {
			sq[i] = math.Inf(1)
		}
	}

	size := max(width, height)
	f := make([]float64, size)
	d := make([]float64, size)
	v := make([]int, size)
	z := make([]float64, size+1)

	// Columns first, then rows; both passes work on squared distances.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			f[y] = sq[y*width+x]
		}
		edt1D(f[:height], d[:height], v, z)
		for y := 0; y < height; y++ {
			sq[y*width+x] = d[y]
		}
	}
	for y := 0; y < height; y++ {
		row := sq[y*width : (y+1)*width]
		copy(f[:width], row)
		edt1D(f[:width], d[:width], v, z)
		copy(row, d[:width])
	}

	out := make([]float64, n)
	for i, s := range sq {
		out[i] = math.Sqrt(s)
	}
	return out
}

// edt1D computes the 1D squared distance transform of f into d.
// v and z are scratch buffers of at least len(f) and len(f)+1.
func edt1D(f, d []float64, v []int, z []float64) {
	n := len(f)

	// Skip leading infinite samples: they cannot host a parabola.
	first := -1
	for q := 0; q < n; q++ {
		if !math.IsInf(f[q], 1) {
			first = q
			break
		}
	}
	if first < 0 {
		for q := range d {
			d[q] = math.Inf(1)
		}
		return
	}

	k := 0
	v[0] = first
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)
	for q := first + 1; q < n; q++ {
		if math.IsInf(f[q], 1) {
			continue
		}
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the abscissa where the parabolas rooted at q and p meet.
func intersect(f []float64, q, p int) float64 {
	fq, fp := f[q], f[p]
	qf, pf := float64(q), float64(p)
	return ((fq + qf*qf) - (fp + pf*pf)) / (2*qf - 2*pf)
}

package image

import (
	stdimage "image"
	"math"

	"golang.org/x/image/draw"
)

// Transform resamples src through m into a new mask with the same bounds.
// m maps source coordinates to destination coordinates. Destination pixels
// whose preimage falls outside src stay transparent; nothing is expanded.
func Transform(src *stdimage.Alpha, m Affine) *stdimage.Alpha {
	dst := stdimage.NewAlpha(src.Bounds())
	draw.CatmullRom.Transform(dst, m.Aff3(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ScaleCentered resizes src by (sx, sy) and re-centres the result on a mask
// of the original size. Content that grows past the edges is cropped.
// The resized extent is clamped to at least one pixel per axis, so zero or
// negative factors collapse the glyph instead of failing.
func ScaleCentered(src *stdimage.Alpha, sx, sy float64) *stdimage.Alpha {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	nw := scaledExtent(w, sx)
	nh := scaledExtent(h, sy)

	dst := stdimage.NewAlpha(b)
	x0 := b.Min.X + floorDiv(w-nw, 2)
	y0 := b.Min.Y + floorDiv(h-nh, 2)
	dr := stdimage.Rect(x0, y0, x0+nw, y0+nh)
	draw.CatmullRom.Scale(dst, dr, src, b, draw.Src, nil)
	return dst
}

func scaledExtent(n int, s float64) int {
	v := math.Round(float64(n) * s)
	if !(v >= 1) {
		return 1
	}
	// Bound the extent so absurd factors cannot overflow int.
	if v > float64(64*n) {
		return 64 * n
	}
	return int(v)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Package image holds the geometric resampling used to deform glyph patches.
package image

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine represents a 2D affine transformation matrix.
//
// The transformation is represented as a 3x3 matrix:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// Affine values map source pixel coordinates to destination coordinates,
// which is the convention golang.org/x/image/draw expects.
type Affine struct {
	a, b, c float64 // First row: x' = ax + by + c
	d, e, f float64 // Second row: y' = dx + ey + f
}

// Identity returns the identity transformation (no change).
func Identity() Affine {
	return Affine{
		a: 1, b: 0, c: 0,
		d: 0, e: 1, f: 0,
	}
}

// Translate returns a translation transformation that shifts points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{
		a: 1, b: 0, c: tx,
		d: 0, e: 1, f: ty,
	}
}

// Rotate returns a rotation by angle (radians) around the origin.
// In y-down image space a positive angle turns clockwise on screen.
func Rotate(angle float64) Affine {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Affine{
		a: cos, b: -sin, c: 0,
		d: sin, e: cos, f: 0,
	}
}

// Shear returns a horizontal shear: x' = x + sx*y.
func Shear(sx float64) Affine {
	return Affine{
		a: 1, b: sx, c: 0,
		d: 0, e: 1, f: 0,
	}
}

// Multiply returns the result of multiplying this affine transform by another.
// The result applies 'other' first, then 'this'.
func (a Affine) Multiply(other Affine) Affine {
	return Affine{
		a: a.a*other.a + a.b*other.d,
		b: a.a*other.b + a.b*other.e,
		c: a.a*other.c + a.b*other.f + a.c,
		d: a.d*other.a + a.e*other.d,
		e: a.d*other.b + a.e*other.e,
		f: a.d*other.c + a.e*other.f + a.f,
	}
}

// TransformPoint applies the affine transformation to point (x, y).
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.a*x + a.b*y + a.c, a.d*x + a.e*y + a.f
}

// Aff3 converts the matrix into the row-major form used by x/image/draw.
func (a Affine) Aff3() f64.Aff3 {
	return f64.Aff3{a.a, a.b, a.c, a.d, a.e, a.f}
}

// RotateAt rotates by angle (radians) around (cx, cy).
func RotateAt(angle, cx, cy float64) Affine {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}

// ShearAt shears horizontally by sx keeping the row through cy fixed.
func ShearAt(sx, cy float64) Affine {
	return Translate(0, cy).Multiply(Shear(sx)).Multiply(Translate(0, -cy))
}
